package retrieval

import (
	"fmt"
	"strings"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// NonStackableRuleID is the contract rule that forbids combining the
// 4th-night-free and early-booking promotions.
const NonStackableRuleID = "stk_4th_eb"

var stackingKeywords = []string{"stack", "combine", "combinable"}

var nightlifeClaims = []string{"nightlife-focused", "nightlife focused", "late-night scene"}

// DetectConflict checks one chunk against the canonical record for the
// section it is being considered for. A conflicting chunk is excluded
// from the section and logged, never silently blended in. Detection is a
// small explicit rule table; new conflict types require new named rules.
func DetectConflict(ch model.Chunk, section model.SectionKey, hotel model.Hotel) *model.ConflictEvent {
	text := strings.ToLower(ch.Text)

	if ev := detectStackingClaim(ch, text, hotel); ev != nil {
		return ev
	}
	if ev := detectPositioningClaim(ch, text, section, hotel); ev != nil {
		return ev
	}
	return nil
}

// detectStackingClaim fires when a chunk asserts that the 4th-night-free
// and early-booking promotions can be combined while a contract rule
// disallows it.
func detectStackingClaim(ch model.Chunk, text string, hotel model.Hotel) *model.ConflictEvent {
	if !containsAny(text, stackingKeywords...) {
		return nil
	}
	if !strings.Contains(text, "4th") || !strings.Contains(text, "early booking") {
		return nil
	}

	for _, rule := range hotel.Contract.StackingRules {
		if rule.ID == NonStackableRuleID || (!rule.AllowsCombination && len(rule.AppliesTo) > 0) {
			return &model.ConflictEvent{
				ChunkID: ch.ID,
				Reason: fmt.Sprintf(
					"claims 4th-night-free and early-booking promotions can be combined; contract rule %s disallows stacking", rule.ID),
				ContradictsPath: "contract.stackingRules." + rule.ID,
			}
		}
	}
	return nil
}

// detectPositioningClaim fires when a chunk describes the property as
// nightlife-focused while the canonical positioning tags say otherwise.
// Only evaluated for the positioning section.
func detectPositioningClaim(ch model.Chunk, text string, section model.SectionKey, hotel model.Hotel) *model.ConflictEvent {
	if section != model.SectionPositioning {
		return nil
	}
	if !containsAny(text, nightlifeClaims...) {
		return nil
	}
	for _, tag := range hotel.Positioning.Tags {
		if strings.EqualFold(tag, "nightlife") {
			return nil
		}
	}

	return &model.ConflictEvent{
		ChunkID: ch.ID,
		Reason: fmt.Sprintf(
			"claims a nightlife-focused scene; canonical positioning tags are [%s]",
			strings.Join(hotel.Positioning.Tags, ", ")),
		ContradictsPath: "positioningTags",
	}
}

// containsAny checks if s contains any of the given substrings.
func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
