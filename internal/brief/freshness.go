package brief

import (
	"fmt"
	"time"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// EvaluateFreshness checks every citation and every used semantic chunk
// across all produced sections against the per-source-type max-age
// policy. Types with no configured limit are skipped. Compliance is WARN
// iff at least one item exceeds its limit.
func EvaluateFreshness(sections model.Sections, policy map[model.SourceType]int, now time.Time) model.FreshnessSummary {
	summary := model.FreshnessSummary{
		Compliance: model.CompliancePass,
		Warnings:   []string{},
	}

	for _, named := range orderedSections(sections) {
		for _, c := range named.citations {
			checkAge(&summary, policy, named.name, "source", c.Title, c.Type, c.Date, now)
			trackCitationDates(&summary, c.Date)
		}
		for _, ch := range named.chunks {
			checkAge(&summary, policy, named.name, "chunk", ch.Title, model.SourceTypeChunk, ch.Date, now)
		}
	}

	if len(summary.Warnings) > 0 {
		summary.Compliance = model.ComplianceWarn
	}
	return summary
}

func checkAge(summary *model.FreshnessSummary, policy map[model.SourceType]int, section, kind, title string, st model.SourceType, date time.Time, now time.Time) {
	limit, ok := policy[st]
	if !ok {
		return
	}
	age := wholeDays(now.Sub(date))
	if age > limit {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf(
			"%s: %s %q is %d days old (limit %d)", section, kind, title, age, limit))
	}
}

func trackCitationDates(summary *model.FreshnessSummary, date time.Time) {
	if summary.OldestCitation == nil || date.Before(*summary.OldestCitation) {
		d := date
		summary.OldestCitation = &d
	}
	if summary.NewestCitation == nil || date.After(*summary.NewestCitation) {
		d := date
		summary.NewestCitation = &d
	}
}

// wholeDays truncates a duration to whole days.
func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}

// namedSection flattens a section's cited material for aggregation.
type namedSection struct {
	name      string
	status    model.SectionStatus
	citations []model.Citation
	chunks    []model.ChunkRef
	conflicts []model.ConflictEvent
}

// orderedSections lists the produced sections in a fixed order so that
// aggregate output is deterministic.
func orderedSections(s model.Sections) []namedSection {
	var out []namedSection
	if s.Positioning != nil {
		out = append(out, namedSection{"positioning", s.Positioning.Status, s.Positioning.Citations, s.Positioning.SemanticChunksUsed, s.Positioning.ConflictsIgnored})
	}
	if s.TravelerFit != nil {
		out = append(out, namedSection{"travelerFit", s.TravelerFit.Status, s.TravelerFit.Citations, s.TravelerFit.SemanticChunksUsed, s.TravelerFit.ConflictsIgnored})
	}
	if s.Risks != nil {
		out = append(out, namedSection{"risks", s.Risks.Status, s.Risks.Citations, s.Risks.SemanticChunksUsed, s.Risks.ConflictsIgnored})
	}
	if s.Promotions != nil {
		out = append(out, namedSection{"promotions", s.Promotions.Status, s.Promotions.Citations, nil, s.Promotions.ConflictsIgnored})
	}
	if s.UJVPov != nil {
		out = append(out, namedSection{"ujvPov", s.UJVPov.Status, s.UJVPov.Citations, s.UJVPov.SemanticChunksUsed, s.UJVPov.ConflictsIgnored})
	}
	return out
}
