// Package brief assembles citation-backed hotel briefs: per-section
// builders over canonical data plus retrieved semantic color, freshness
// policy evaluation, evidence scoring with escalation, and the optional
// narrative override gate.
package brief

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
	"github.com/ujv-group/hotel-brief-cli/internal/retrieval"
)

// InsufficientSentence is the fixed content of any section that cannot
// be backed by at least one citation. Preserved verbatim through the
// narrative override gate.
const InsufficientSentence = "Insufficient governed sources to answer this section; route to the intelligence desk for manual research."

// SourceLookup resolves a source id to its record. Unresolvable ids are
// dropped silently, not errors.
type SourceLookup func(id string) (model.Source, bool)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatBookingValue renders the average booking value as the literal
// figure shown to finance roles, e.g. "$23,500".
func FormatBookingValue(v float64) string {
	return usdPrinter.Sprintf("$%.0f", v)
}

// BuildPositioning assembles the positioning section from canonical
// strengths and the requested season's note, plus retrieved color.
func BuildPositioning(hotel model.Hotel, req model.BriefRequest, res retrieval.Result, lookup SourceLookup) *model.SectionResult {
	facts := append([]string{}, hotel.Positioning.Strengths...)
	ids := append([]string{}, hotel.Positioning.SourceIDs...)

	if note, ok := hotel.Seasonality[req.Season]; ok && note.Text != "" {
		facts = append(facts, fmt.Sprintf("Seasonality (%s): %s", retrieval.Label(string(req.Season)), note.Text))
		ids = append(ids, note.SourceIDs...)
	}

	return finishSection(facts, ids, res, lookup)
}

// BuildTravelerFit assembles the traveler-fit section. This is the sole
// role-based redaction point: finance sees the literal booking-value
// figure, every other role sees the qualitative summary.
func BuildTravelerFit(hotel model.Hotel, req model.BriefRequest, res retrieval.Result, lookup SourceLookup) *model.SectionResult {
	var facts []string
	var ids []string

	if hotel.TravelerFit.Common != "" {
		facts = append(facts, hotel.TravelerFit.Common)
		ids = append(ids, hotel.TravelerFit.SourceIDs...)
	}
	if note, ok := hotel.TravelerFit.ByType[req.TravelerType]; ok && note.Text != "" {
		facts = append(facts, note.Text)
		ids = append(ids, note.SourceIDs...)
	}

	if req.Role == model.RoleFinance {
		facts = append(facts, "Average booking value: "+FormatBookingValue(hotel.BookingIntel.AverageBookingValueUSD))
	} else if hotel.BookingIntel.ValueSummary != "" {
		facts = append(facts, hotel.BookingIntel.ValueSummary)
	}
	facts = append(facts, hotel.BookingIntel.Patterns...)
	ids = append(ids, hotel.BookingIntel.SourceIDs...)

	for _, theme := range hotel.Feedback {
		facts = append(facts, theme.Text)
		ids = append(ids, theme.SourceIDs...)
	}

	return finishSection(facts, ids, res, lookup)
}

// BuildRisks assembles the risks section from canonical risk entries
// whose season relevance includes the requested season.
func BuildRisks(hotel model.Hotel, req model.BriefRequest, res retrieval.Result, lookup SourceLookup) *model.SectionResult {
	var facts []string
	var ids []string

	for _, risk := range hotel.Risks {
		if !seasonApplies(risk.Seasons, req.Season) {
			continue
		}
		facts = append(facts, fmt.Sprintf("[%s] %s", risk.Severity, risk.Text))
		ids = append(ids, risk.SourceIDs...)
	}

	return finishSection(facts, ids, res, lookup)
}

// BuildUJVPov assembles the point-of-view section from the talk track.
func BuildUJVPov(hotel model.Hotel, res retrieval.Result, lookup SourceLookup) *model.SectionResult {
	var facts []string
	var ids []string
	for _, tt := range hotel.UJVPov {
		facts = append(facts, tt.Text)
		ids = append(ids, tt.SourceIDs...)
	}
	return finishSection(facts, ids, res, lookup)
}

// BuildPromotions assembles the promotions section from structured data
// only. No semantic chunk is ever used for promotion content; the full
// chunk pool is still screened for conflicts so hotel-wide stacking
// claims surface here.
func BuildPromotions(hotel model.Hotel, pool []model.Chunk, lookup SourceLookup) *model.PromotionsSection {
	conflicts := retrieval.ScanConflicts(pool, hotel, model.SectionPromotions)

	var facts []string
	var ids []string
	for _, p := range hotel.Promotions {
		fact := fmt.Sprintf("%s: %s (valid %s to %s)", p.Name, p.Description, p.ValidFrom, p.ValidTo)
		if len(p.Eligibility) > 0 {
			fact += "; eligibility: " + strings.Join(p.Eligibility, ", ")
		}
		facts = append(facts, fact)
		ids = append(ids, p.SourceIDs...)
	}
	for _, rule := range hotel.Contract.StackingRules {
		facts = append(facts, "Stacking: "+rule.Text)
		ids = append(ids, rule.SourceIDs...)
	}

	citations := resolveCitations(ids, lookup)
	considered := len(hotel.Promotions) + len(hotel.Contract.StackingRules)

	if len(citations) == 0 {
		return &model.PromotionsSection{
			Status:           model.StatusInsufficient,
			Content:          InsufficientSentence,
			Promotions:       []model.Promotion{},
			StackingRules:    []model.StackingRule{},
			Citations:        []model.Citation{},
			ConflictsIgnored: []model.ConflictEvent{},
			Retrieval: model.RetrievalBreakdown{
				CanonicalFacts: considered,
			},
		}
	}

	promos := hotel.Promotions
	if promos == nil {
		promos = []model.Promotion{}
	}
	rules := hotel.Contract.StackingRules
	if rules == nil {
		rules = []model.StackingRule{}
	}
	if conflicts == nil {
		conflicts = []model.ConflictEvent{}
	}

	return &model.PromotionsSection{
		Status:           model.StatusOK,
		Content:          renderBullets(facts, nil),
		Promotions:       promos,
		StackingRules:    rules,
		Citations:        citations,
		ConflictsIgnored: conflicts,
		Retrieval: model.RetrievalBreakdown{
			CanonicalFacts: considered,
			ConflictsFound: len(conflicts) > 0,
			ConflictCount:  len(conflicts),
		},
	}
}

// finishSection applies the shared citation and insufficiency rules: a
// section is OK iff at least one citation resolved, and in the
// insufficient state nothing but the fixed sentence leaks through.
func finishSection(facts []string, ids []string, res retrieval.Result, lookup SourceLookup) *model.SectionResult {
	citations := resolveCitations(ids, lookup)
	conflicts := res.ConflictsIgnored
	if conflicts == nil {
		conflicts = []model.ConflictEvent{}
	}

	if len(citations) == 0 {
		return &model.SectionResult{
			Status:             model.StatusInsufficient,
			Content:            InsufficientSentence,
			Citations:          []model.Citation{},
			SemanticChunksUsed: []model.ChunkRef{},
			ConflictsIgnored:   conflicts,
			Retrieval: model.RetrievalBreakdown{
				CanonicalFacts: len(facts),
				ConflictsFound: len(conflicts) > 0,
				ConflictCount:  len(conflicts),
			},
		}
	}

	chunks := make([]model.ChunkRef, 0, len(res.Used))
	for _, rc := range res.Used {
		chunks = append(chunks, model.ChunkRef{
			ChunkID:     rc.Chunk.ID,
			Title:       rc.Chunk.Title,
			Date:        rc.Chunk.Date,
			Reliability: rc.Chunk.Reliability,
			Score:       rc.Score,
		})
	}

	return &model.SectionResult{
		Status:             model.StatusOK,
		Content:            renderBullets(facts, chunks),
		Citations:          citations,
		SemanticChunksUsed: chunks,
		ConflictsIgnored:   conflicts,
		Retrieval: model.RetrievalBreakdown{
			CanonicalFacts:     len(facts),
			SemanticChunksUsed: len(chunks),
			ConflictsFound:     len(conflicts) > 0,
			ConflictCount:      len(conflicts),
		},
	}
}

// resolveCitations de-duplicates source ids preserving first-seen order
// and resolves each through the lookup, silently dropping unknown ids.
func resolveCitations(ids []string, lookup SourceLookup) []model.Citation {
	seen := make(map[string]bool, len(ids))
	citations := make([]model.Citation, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		src, ok := lookup(id)
		if !ok {
			continue
		}
		citations = append(citations, model.Citation{
			SourceID:    src.ID,
			Type:        src.Type,
			Title:       src.Title,
			Author:      src.Author,
			Date:        src.Date,
			Reliability: src.Reliability,
		})
	}
	return citations
}

// renderBullets joins fact strings as a bullet list, appending one extra
// bullet naming any retrieved chunks as supporting color.
func renderBullets(facts []string, chunks []model.ChunkRef) string {
	var b strings.Builder
	for i, f := range facts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + f)
	}
	if len(chunks) > 0 {
		titles := make([]string, len(chunks))
		for i, c := range chunks {
			titles[i] = `"` + c.Title + `"`
		}
		b.WriteString("\n- Supporting color (non-canonical): " + strings.Join(titles, ", "))
	}
	return b.String()
}

func seasonApplies(seasons []model.Season, s model.Season) bool {
	for _, candidate := range seasons {
		if candidate == s {
			return true
		}
	}
	return false
}
