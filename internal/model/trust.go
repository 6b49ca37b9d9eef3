package model

import "time"

// Compliance is the freshness policy verdict for one response.
type Compliance string

const (
	CompliancePass Compliance = "PASS"
	ComplianceWarn Compliance = "WARN"
)

// EvidenceLabel buckets the composite evidence-strength score.
type EvidenceLabel string

const (
	EvidenceHigh   EvidenceLabel = "High"
	EvidenceMedium EvidenceLabel = "Medium"
	EvidenceLow    EvidenceLabel = "Low"
)

// Evidence summarizes citation volume, reliability and recency.
type Evidence struct {
	Score float64       `json:"score"`
	Label EvidenceLabel `json:"label"`
}

// FreshnessSummary reports policy evaluation over all cited material.
type FreshnessSummary struct {
	Compliance     Compliance `json:"compliance"`
	Warnings       []string   `json:"warnings"`
	OldestCitation *time.Time `json:"oldestCitation,omitempty"`
	NewestCitation *time.Time `json:"newestCitation,omitempty"`
}

// UsageStats tallies evidence consumed across all sections.
type UsageStats struct {
	TotalCitations     int `json:"totalCitations"`
	SemanticChunksUsed int `json:"semanticChunksUsed"`
	ConflictsDetected  int `json:"conflictsDetected"`
}

// Guardrails reports which safety policies held for this response.
type Guardrails struct {
	CanonicalOverridesNotes bool `json:"canonicalOverridesNotes"`
	CitationBackedOnly      bool `json:"citationBackedOnly"`
	SensitiveDataRestricted bool `json:"sensitiveDataRestricted"`
}

// Escalation flags a response for human review with a stated reason.
type Escalation struct {
	Required bool   `json:"required"`
	Reason   string `json:"reason,omitempty"`
}

// Trust is the aggregate trust payload for one response.
type Trust struct {
	Evidence   Evidence         `json:"evidence"`
	Freshness  FreshnessSummary `json:"freshness"`
	Usage      UsageStats       `json:"usage"`
	Guardrails Guardrails       `json:"guardrails"`
	Escalation Escalation       `json:"escalation"`
}

// BriefResponse is the full response for one brief request.
type BriefResponse struct {
	QueryPlan QueryPlan `json:"queryPlan"`
	Sections  Sections  `json:"sections"`
	Trust     Trust     `json:"trust"`
	CreatedAt time.Time `json:"createdAt"`
}
