// Package store persists brief-run audit records. Feedback signals are
// deliberately not persisted; only run provenance is.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// BriefRun is one generated brief's audit record.
type BriefRun struct {
	ID               string    `json:"id"`
	HotelID          string    `json:"hotel_id"`
	TravelerType     string    `json:"traveler_type"`
	Season           string    `json:"season"`
	Role             string    `json:"role"`
	EvidenceScore    float64   `json:"evidence_score"`
	EvidenceLabel    string    `json:"evidence_label"`
	Escalated        bool      `json:"escalated"`
	EscalationReason string    `json:"escalation_reason,omitempty"`
	Response         string    `json:"response,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Store defines the persistence interface for brief-run audit records.
type Store interface {
	SaveRun(ctx context.Context, run BriefRun) error
	GetRun(ctx context.Context, id string) (*BriefRun, error)
	ListRuns(ctx context.Context, limit, offset int) ([]BriefRun, error)
	Migrate(ctx context.Context) error
	Close() error
}

// NewRun builds an audit record from a request and its response.
func NewRun(req model.BriefRequest, resp *model.BriefResponse) (BriefRun, error) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return BriefRun{}, eris.Wrap(err, "store: marshal response")
	}
	return BriefRun{
		ID:               uuid.New().String(),
		HotelID:          req.HotelID,
		TravelerType:     string(req.TravelerType),
		Season:           string(req.Season),
		Role:             string(req.Role),
		EvidenceScore:    resp.Trust.Evidence.Score,
		EvidenceLabel:    string(resp.Trust.Evidence.Label),
		Escalated:        resp.Trust.Escalation.Required,
		EscalationReason: resp.Trust.Escalation.Reason,
		Response:         string(payload),
		CreatedAt:        resp.CreatedAt.UTC(),
	}, nil
}

// New opens a store for the configured driver.
func New(ctx context.Context, driver, databaseURL string) (Store, error) {
	switch driver {
	case "postgres":
		return NewPostgres(ctx, databaseURL)
	case "sqlite", "":
		return NewSQLite(databaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
