package brief

import (
	"math"
	"strings"
	"time"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

const (
	// evidenceThreshold is the score below which escalation is required.
	evidenceThreshold = 0.60
	// recencyWindowDays marks a citation as recent.
	recencyWindowDays = 120
)

// BuildTrust computes the composite trust payload: evidence strength,
// usage stats, guardrail verdicts, and the escalation decision. Reasons
// are mutually exclusive and evaluated in priority order.
func BuildTrust(req model.BriefRequest, sections model.Sections, fresh model.FreshnessSummary, bookingFigure string, now time.Time) model.Trust {
	named := orderedSections(sections)

	// Unique citations across all sections.
	seen := make(map[string]bool)
	var unique []model.Citation
	chunksUsed := 0
	conflicts := 0
	for _, ns := range named {
		for _, c := range ns.citations {
			if seen[c.SourceID] {
				continue
			}
			seen[c.SourceID] = true
			unique = append(unique, c)
		}
		chunksUsed += len(ns.chunks)
		conflicts += len(ns.conflicts)
	}

	avgReliability := 0.0
	recent := false
	for _, c := range unique {
		avgReliability += c.Reliability
		if wholeDays(now.Sub(c.Date)) <= recencyWindowDays {
			recent = true
		}
	}
	if len(unique) > 0 {
		avgReliability /= float64(len(unique))
	}

	score := math.Min(1, float64(len(unique))/8) * (avgReliability * 0.9)
	if recent {
		score += 0.05
	}
	score += math.Min(0.02, float64(chunksUsed)*0.01)
	score = math.Round(clamp(score, 0, 1)*100) / 100

	label := model.EvidenceLow
	switch {
	case score >= 0.75:
		label = model.EvidenceHigh
	case score >= 0.60:
		label = model.EvidenceMedium
	}

	escalation := decideEscalation(req, sections, fresh, score)

	return model.Trust{
		Evidence: model.Evidence{Score: score, Label: label},
		Freshness: fresh,
		Usage: model.UsageStats{
			TotalCitations:     len(unique),
			SemanticChunksUsed: chunksUsed,
			ConflictsDetected:  conflicts,
		},
		Guardrails: model.Guardrails{
			CanonicalOverridesNotes: true,
			CitationBackedOnly:      citationBackedOnly(named),
			SensitiveDataRestricted: sensitiveDataRestricted(req.Role, sections, bookingFigure),
		},
		Escalation: escalation,
	}
}

// decideEscalation applies the escalation triggers in priority order;
// the first that fires supplies the reason.
func decideEscalation(req model.BriefRequest, sections model.Sections, fresh model.FreshnessSummary, score float64) model.Escalation {
	switch {
	case score < evidenceThreshold:
		return model.Escalation{Required: true, Reason: "evidence strength below threshold"}
	case req.IncludePromotions && (sections.Promotions == nil || len(sections.Promotions.Citations) == 0):
		return model.Escalation{Required: true, Reason: "promotions requested but not citation-backed"}
	case sections.TravelerFit != nil && sections.TravelerFit.Status == model.StatusInsufficient:
		return model.Escalation{Required: true, Reason: "traveler fit section lacks sufficient sources"}
	case fresh.Compliance == model.ComplianceWarn:
		return model.Escalation{Required: true, Reason: "freshness policy warnings present"}
	default:
		return model.Escalation{}
	}
}

// citationBackedOnly verifies the structural invariant that every OK
// section carries at least one citation.
func citationBackedOnly(named []namedSection) bool {
	for _, ns := range named {
		if ns.status == model.StatusOK && len(ns.citations) == 0 {
			return false
		}
	}
	return true
}

// sensitiveDataRestricted checks the role guardrail: for non-finance
// roles the literal booking-value figure must not appear in rendered
// content. This is a substring heuristic, not field-level provenance
// tracking; a narrative override that rephrases the figure would evade
// it.
func sensitiveDataRestricted(role model.Role, sections model.Sections, bookingFigure string) bool {
	if role == model.RoleFinance {
		return false
	}
	if bookingFigure == "" {
		return true
	}
	for _, content := range sectionContents(sections) {
		if strings.Contains(content, bookingFigure) {
			return false
		}
	}
	return true
}

func sectionContents(s model.Sections) []string {
	var out []string
	for _, sec := range []*model.SectionResult{s.Positioning, s.TravelerFit, s.Risks, s.UJVPov} {
		if sec != nil {
			out = append(out, sec.Content)
		}
	}
	if s.Promotions != nil {
		out = append(out, s.Promotions.Content)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
