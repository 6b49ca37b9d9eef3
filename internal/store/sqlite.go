package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS brief_runs (
	id                TEXT PRIMARY KEY,
	hotel_id          TEXT NOT NULL,
	traveler_type     TEXT NOT NULL,
	season            TEXT NOT NULL,
	role              TEXT NOT NULL,
	evidence_score    REAL NOT NULL,
	evidence_label    TEXT NOT NULL,
	escalated         INTEGER NOT NULL DEFAULT 0,
	escalation_reason TEXT,
	response          TEXT,
	created_at        DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_brief_runs_hotel_id ON brief_runs(hotel_id);
CREATE INDEX IF NOT EXISTS idx_brief_runs_created_at ON brief_runs(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run BriefRun) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO brief_runs (id, hotel_id, traveler_type, season, role, evidence_score, evidence_label, escalated, escalation_reason, response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.HotelID, run.TravelerType, run.Season, run.Role,
		run.EvidenceScore, run.EvidenceLabel, run.Escalated, run.EscalationReason,
		run.Response, run.CreatedAt,
	)
	return eris.Wrap(err, "sqlite: insert run")
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*BriefRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, hotel_id, traveler_type, season, role, evidence_score, evidence_label, escalated, escalation_reason, response, created_at
		 FROM brief_runs WHERE id = ?`, id)

	var run BriefRun
	var reason, response sql.NullString
	err := row.Scan(&run.ID, &run.HotelID, &run.TravelerType, &run.Season, &run.Role,
		&run.EvidenceScore, &run.EvidenceLabel, &run.Escalated, &reason, &response, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, eris.Errorf("sqlite: get run %s: not found", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get run %s", id)
	}
	run.EscalationReason = reason.String
	run.Response = response.String
	return &run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit, offset int) ([]BriefRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hotel_id, traveler_type, season, role, evidence_score, evidence_label, escalated, escalation_reason, response, created_at
		 FROM brief_runs ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []BriefRun
	for rows.Next() {
		var run BriefRun
		var reason, response sql.NullString
		if err := rows.Scan(&run.ID, &run.HotelID, &run.TravelerType, &run.Season, &run.Role,
			&run.EvidenceScore, &run.EvidenceLabel, &run.Escalated, &reason, &response, &run.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		run.EscalationReason = reason.String
		run.Response = response.String
		runs = append(runs, run)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: iterate runs")
}
