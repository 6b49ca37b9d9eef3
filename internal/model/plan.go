package model

// SectionKey identifies one brief section.
type SectionKey string

const (
	SectionPositioning SectionKey = "positioning"
	SectionTravelerFit SectionKey = "traveler_fit"
	SectionRisks       SectionKey = "risks"
	SectionPromotions  SectionKey = "promotions"
	SectionUJVPov      SectionKey = "ujv_pov"
)

// RetrievalMode selects between the deterministic pipeline and the
// narrative-assisted variant that rewrites drafted prose.
type RetrievalMode string

const (
	ModeDeterministic     RetrievalMode = "deterministic"
	ModeNarrativeAssisted RetrievalMode = "narrative_assisted"
)

// QueryPlan is the derived, read-only retrieval plan for one request.
type QueryPlan struct {
	Sections     []SectionKey            `json:"sections"`
	GlobalTerms  []string                `json:"globalTerms"`
	SectionTerms map[SectionKey][]string `json:"sectionTerms"`
	Mode         RetrievalMode           `json:"retrievalMode"`
}
