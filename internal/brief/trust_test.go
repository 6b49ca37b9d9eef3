package brief

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// trustCitations fabricates n distinct citations with a shared
// reliability and date.
func trustCitations(n int, reliability float64, date string) []model.Citation {
	var out []model.Citation
	for i := 0; i < n; i++ {
		out = append(out, model.Citation{
			SourceID:    fmt.Sprintf("src_%s_%d", date, i),
			Type:        model.SourceTypeSiteVisit,
			Title:       fmt.Sprintf("Source %d", i),
			Date:        day(2025, 7, 1),
			Reliability: reliability,
		})
	}
	return out
}

func passFreshness() model.FreshnessSummary {
	return model.FreshnessSummary{Compliance: model.CompliancePass, Warnings: []string{}}
}

func TestBuildTrustScoring(t *testing.T) {
	t.Parallel()

	req := fixtureRequest()
	req.IncludePromotions = false

	t.Run("high evidence", func(t *testing.T) {
		t.Parallel()

		sections := model.Sections{
			Positioning: &model.SectionResult{
				Status:    model.StatusOK,
				Citations: trustCitations(8, 0.95, "a"),
				SemanticChunksUsed: []model.ChunkRef{
					{ChunkID: "ch_1"}, {ChunkID: "ch_2"},
				},
			},
			TravelerFit: &model.SectionResult{Status: model.StatusOK, Citations: trustCitations(1, 0.95, "a")[:1]},
		}

		trust := BuildTrust(req, sections, passFreshness(), "", fixtureNow)

		// 8 unique citations, avg 0.95, recent, two chunks:
		// 1.0*0.855 + 0.05 + 0.02 = 0.925 -> 0.93
		assert.InDelta(t, 0.93, trust.Evidence.Score, 1e-9)
		assert.Equal(t, model.EvidenceHigh, trust.Evidence.Label)
		assert.False(t, trust.Escalation.Required)
		assert.Equal(t, 8, trust.Usage.TotalCitations)
		assert.Equal(t, 2, trust.Usage.SemanticChunksUsed)
	})

	t.Run("thin evidence scores low and escalates", func(t *testing.T) {
		t.Parallel()

		sections := model.Sections{
			Positioning: &model.SectionResult{
				Status: model.StatusOK,
				Citations: []model.Citation{
					{SourceID: "only", Title: "Lone source", Date: day(2024, 1, 1), Reliability: 0.5},
				},
			},
			TravelerFit: &model.SectionResult{Status: model.StatusInsufficient},
		}

		trust := BuildTrust(req, sections, passFreshness(), "", fixtureNow)

		// (1/8)*0.45 with no recency or chunk bonus -> 0.06
		assert.InDelta(t, 0.06, trust.Evidence.Score, 1e-9)
		assert.Equal(t, model.EvidenceLow, trust.Evidence.Label)
		assert.True(t, trust.Escalation.Required)
		assert.Equal(t, "evidence strength below threshold", trust.Escalation.Reason)
	})

	t.Run("score non-decreasing in citation count and bounded", func(t *testing.T) {
		t.Parallel()

		// Reliability, recency, and chunk usage held fixed; only the
		// number of unique citations grows.
		prev := 0.0
		for n := 1; n <= 12; n++ {
			sections := model.Sections{
				Positioning: &model.SectionResult{
					Status:    model.StatusOK,
					Citations: trustCitations(n, 0.8, "mono"),
				},
				TravelerFit: &model.SectionResult{Status: model.StatusOK, Citations: trustCitations(1, 0.8, "mono")},
			}

			trust := BuildTrust(req, sections, passFreshness(), "", fixtureNow)

			assert.GreaterOrEqual(t, trust.Evidence.Score, prev, "citations=%d", n)
			assert.GreaterOrEqual(t, trust.Evidence.Score, 0.0, "citations=%d", n)
			assert.LessOrEqual(t, trust.Evidence.Score, 1.0, "citations=%d", n)
			prev = trust.Evidence.Score
		}
	})

	t.Run("citations deduplicated across sections", func(t *testing.T) {
		t.Parallel()

		shared := trustCitations(2, 0.9, "s")
		sections := model.Sections{
			Positioning: &model.SectionResult{Status: model.StatusOK, Citations: shared},
			TravelerFit: &model.SectionResult{Status: model.StatusOK, Citations: shared},
		}

		trust := BuildTrust(req, sections, passFreshness(), "", fixtureNow)
		assert.Equal(t, 2, trust.Usage.TotalCitations)
	})
}

func TestBuildTrustEscalationPriority(t *testing.T) {
	t.Parallel()

	strong := func() model.Sections {
		return model.Sections{
			Positioning: &model.SectionResult{Status: model.StatusOK, Citations: trustCitations(8, 0.9, "p")},
			TravelerFit: &model.SectionResult{Status: model.StatusOK, Citations: trustCitations(1, 0.9, "p")[:1]},
			Promotions: &model.PromotionsSection{
				Status:    model.StatusOK,
				Citations: trustCitations(1, 0.9, "promo")[:1],
			},
		}
	}

	t.Run("uncited promotions escalate when requested", func(t *testing.T) {
		t.Parallel()

		sections := strong()
		sections.Promotions = &model.PromotionsSection{Status: model.StatusInsufficient, Citations: []model.Citation{}}

		trust := BuildTrust(fixtureRequest(), sections, passFreshness(), "", fixtureNow)

		assert.True(t, trust.Escalation.Required)
		assert.Equal(t, "promotions requested but not citation-backed", trust.Escalation.Reason)
	})

	t.Run("promotions not requested do not escalate", func(t *testing.T) {
		t.Parallel()

		req := fixtureRequest()
		req.IncludePromotions = false
		sections := strong()
		sections.Promotions = nil

		trust := BuildTrust(req, sections, passFreshness(), "", fixtureNow)
		assert.False(t, trust.Escalation.Required)
	})

	t.Run("insufficient traveler fit escalates", func(t *testing.T) {
		t.Parallel()

		sections := strong()
		sections.TravelerFit = &model.SectionResult{Status: model.StatusInsufficient}

		trust := BuildTrust(fixtureRequest(), sections, passFreshness(), "", fixtureNow)

		assert.True(t, trust.Escalation.Required)
		assert.Equal(t, "traveler fit section lacks sufficient sources", trust.Escalation.Reason)
	})

	t.Run("freshness warnings escalate last", func(t *testing.T) {
		t.Parallel()

		warn := model.FreshnessSummary{
			Compliance: model.ComplianceWarn,
			Warnings:   []string{"positioning: source \"Old\" is 400 days old (limit 365)"},
		}

		trust := BuildTrust(fixtureRequest(), strong(), warn, "", fixtureNow)

		assert.True(t, trust.Escalation.Required)
		assert.Equal(t, "freshness policy warnings present", trust.Escalation.Reason)
	})
}

func TestBuildTrustGuardrails(t *testing.T) {
	t.Parallel()

	strong := model.Sections{
		Positioning: &model.SectionResult{Status: model.StatusOK, Citations: trustCitations(8, 0.9, "g"), Content: "- clean"},
		TravelerFit: &model.SectionResult{Status: model.StatusOK, Citations: trustCitations(1, 0.9, "g")[:1], Content: "- clean"},
	}
	req := fixtureRequest()
	req.IncludePromotions = false

	t.Run("canonical precedence always attested", func(t *testing.T) {
		t.Parallel()

		trust := BuildTrust(req, strong, passFreshness(), "$23,500", fixtureNow)
		assert.True(t, trust.Guardrails.CanonicalOverridesNotes)
	})

	t.Run("citation-backed only fails for uncited OK section", func(t *testing.T) {
		t.Parallel()

		broken := strong
		broken.TravelerFit = &model.SectionResult{Status: model.StatusOK, Citations: nil}

		trust := BuildTrust(req, broken, passFreshness(), "", fixtureNow)
		assert.False(t, trust.Guardrails.CitationBackedOnly)
	})

	t.Run("finance never reports restriction", func(t *testing.T) {
		t.Parallel()

		finance := req
		finance.Role = model.RoleFinance

		trust := BuildTrust(finance, strong, passFreshness(), "$23,500", fixtureNow)
		assert.False(t, trust.Guardrails.SensitiveDataRestricted)
	})

	t.Run("non-finance restricted when figure absent", func(t *testing.T) {
		t.Parallel()

		trust := BuildTrust(req, strong, passFreshness(), "$23,500", fixtureNow)
		assert.True(t, trust.Guardrails.SensitiveDataRestricted)
	})

	t.Run("non-finance leak detected", func(t *testing.T) {
		t.Parallel()

		leaky := strong
		leaky.TravelerFit = &model.SectionResult{
			Status:    model.StatusOK,
			Citations: trustCitations(1, 0.9, "g")[:1],
			Content:   "- Average booking value: $23,500",
		}

		trust := BuildTrust(req, leaky, passFreshness(), "$23,500", fixtureNow)
		assert.False(t, trust.Guardrails.SensitiveDataRestricted)
	})
}
