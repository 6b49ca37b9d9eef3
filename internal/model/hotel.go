package model

// SourceType classifies the provenance of a source record.
type SourceType string

const (
	SourceTypeSiteVisit    SourceType = "site_visit"
	SourceTypeFeedback     SourceType = "post_trip_feedback"
	SourceTypeBookingIntel SourceType = "booking_intelligence"
	SourceTypeContract     SourceType = "contract"
	SourceTypePromotion    SourceType = "promotion"
	SourceTypeUJVPov       SourceType = "ujv_pov"
	SourceTypeChunk        SourceType = "unstructured_chunk"
)

// Hotel is the canonical governed record for a single property. It is
// loaded once per query and treated as immutable; semantic chunks never
// override it.
type Hotel struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Region       string                `json:"region"`
	Positioning  PositioningBlock      `json:"positioning"`
	TravelerFit  TravelerFitBlock      `json:"travelerFit"`
	Seasonality  map[Season]SeasonNote `json:"seasonality"`
	Risks        []RiskEntry           `json:"risks"`
	Promotions   []Promotion           `json:"promotions"`
	Contract     ContractBlock         `json:"contract"`
	BookingIntel BookingIntelligence   `json:"bookingIntelligence"`
	Feedback     []FeedbackTheme       `json:"feedbackThemes"`
	UJVPov       []TalkTrack           `json:"ujvPov"`
	Freshness    map[SourceType]int    `json:"freshnessPolicy"`
}

// PositioningBlock holds the property's market positioning.
type PositioningBlock struct {
	Tags      []string `json:"tags"`
	Strengths []string `json:"strengths"`
	SourceIDs []string `json:"sourceIds"`
}

// SeasonNote describes the property during one season.
type SeasonNote struct {
	Text      string   `json:"text"`
	SourceIDs []string `json:"sourceIds"`
}

// TravelerFitBlock holds fit guidance common to all travelers plus
// per-traveler-type notes.
type TravelerFitBlock struct {
	Common    string                   `json:"common"`
	ByType    map[TravelerType]FitNote `json:"byType"`
	SourceIDs []string                 `json:"sourceIds"`
}

// FitNote is traveler-type-specific fit guidance.
type FitNote struct {
	Text      string   `json:"text"`
	SourceIDs []string `json:"sourceIds"`
}

// RiskEntry is a known caveat with seasonal relevance.
type RiskEntry struct {
	Text      string   `json:"text"`
	Severity  string   `json:"severity"`
	Seasons   []Season `json:"seasons"`
	SourceIDs []string `json:"sourceIds"`
}

// Promotion is a bookable offer with a validity window.
type Promotion struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ValidFrom   string   `json:"validFrom"`
	ValidTo     string   `json:"validTo"`
	Eligibility []string `json:"eligibility"`
	SourceIDs   []string `json:"sourceIds"`
}

// ContractBlock carries contracted terms, currently stacking rules only.
type ContractBlock struct {
	StackingRules []StackingRule `json:"stackingRules"`
}

// StackingRule states whether named promotions may be combined.
type StackingRule struct {
	ID                string   `json:"id"`
	Text              string   `json:"text"`
	AllowsCombination bool     `json:"allowsCombination"`
	AppliesTo         []string `json:"appliesToPromotions"`
	SourceIDs         []string `json:"sourceIds"`
}

// BookingIntelligence aggregates historical booking behavior.
type BookingIntelligence struct {
	AverageBookingValueUSD float64  `json:"averageBookingValueUsd"`
	ValueSummary           string   `json:"valueSummary"`
	Patterns               []string `json:"patterns"`
	SourceIDs              []string `json:"sourceIds"`
}

// FeedbackTheme is a recurring theme from post-trip feedback.
type FeedbackTheme struct {
	Text      string   `json:"text"`
	SourceIDs []string `json:"sourceIds"`
}

// TalkTrack is one element of the UJV point-of-view narrative.
type TalkTrack struct {
	Text      string   `json:"text"`
	SourceIDs []string `json:"sourceIds"`
}
