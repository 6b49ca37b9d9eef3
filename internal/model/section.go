package model

import "time"

// SectionStatus is OK iff the section carries at least one citation.
type SectionStatus string

const (
	StatusOK           SectionStatus = "OK"
	StatusInsufficient SectionStatus = "INSUFFICIENT_SOURCES"
)

// Citation is a resolved source reference backing a section.
type Citation struct {
	SourceID    string     `json:"sourceId"`
	Type        SourceType `json:"type"`
	Title       string     `json:"title"`
	Author      string     `json:"author,omitempty"`
	Date        time.Time  `json:"date"`
	Reliability float64    `json:"reliability"`
}

// ChunkRef identifies a semantic chunk used as supporting color.
type ChunkRef struct {
	ChunkID     string    `json:"chunkId"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Reliability float64   `json:"reliability"`
	Score       int       `json:"score"`
}

// RetrievalBreakdown counts what went into one section.
type RetrievalBreakdown struct {
	CanonicalFacts     int  `json:"canonicalFacts"`
	SemanticChunksUsed int  `json:"semanticChunksUsed"`
	ConflictsFound     bool `json:"conflictsFound"`
	ConflictCount      int  `json:"conflictCount"`
}

// SectionResult is a rendered text section with its citations.
type SectionResult struct {
	Status             SectionStatus      `json:"status"`
	Content            string             `json:"content"`
	Citations          []Citation         `json:"citations"`
	SemanticChunksUsed []ChunkRef         `json:"semanticChunksUsed"`
	Retrieval          RetrievalBreakdown `json:"retrieval"`
	ConflictsIgnored   []ConflictEvent    `json:"conflictsIgnored"`
}

// PromotionsSection is 100% structured-data-derived; no semantic chunk
// is ever used for promotion content.
type PromotionsSection struct {
	Status           SectionStatus      `json:"status"`
	Content          string             `json:"content"`
	Promotions       []Promotion        `json:"promotions"`
	StackingRules    []StackingRule     `json:"stackingRules"`
	Citations        []Citation         `json:"citations"`
	Retrieval        RetrievalBreakdown `json:"retrieval"`
	ConflictsIgnored []ConflictEvent    `json:"conflictsIgnored"`
}

// Sections groups all produced sections. Each optional field is present
// iff the corresponding include* request flag was true.
type Sections struct {
	Positioning *SectionResult     `json:"positioning"`
	TravelerFit *SectionResult     `json:"travelerFit"`
	Risks       *SectionResult     `json:"risks,omitempty"`
	Promotions  *PromotionsSection `json:"promotions,omitempty"`
	UJVPov      *SectionResult     `json:"ujvPov,omitempty"`
}
