package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Pool is the subset of pgxpool.Pool the store uses; pgxmock satisfies
// it for unit tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS brief_runs (
	id                TEXT PRIMARY KEY,
	hotel_id          TEXT NOT NULL,
	traveler_type     TEXT NOT NULL,
	season            TEXT NOT NULL,
	role              TEXT NOT NULL,
	evidence_score    DOUBLE PRECISION NOT NULL,
	evidence_label    TEXT NOT NULL,
	escalated         BOOLEAN NOT NULL DEFAULT FALSE,
	escalation_reason TEXT,
	response          TEXT,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_brief_runs_hotel_id ON brief_runs(hotel_id);
CREATE INDEX IF NOT EXISTS idx_brief_runs_created_at ON brief_runs(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveRun(ctx context.Context, run BriefRun) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO brief_runs (id, hotel_id, traveler_type, season, role, evidence_score, evidence_label, escalated, escalation_reason, response, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		run.ID, run.HotelID, run.TravelerType, run.Season, run.Role,
		run.EvidenceScore, run.EvidenceLabel, run.Escalated, run.EscalationReason,
		run.Response, run.CreatedAt,
	)
	return eris.Wrap(err, "postgres: insert run")
}

func (s *PostgresStore) GetRun(ctx context.Context, id string) (*BriefRun, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, hotel_id, traveler_type, season, role, evidence_score, evidence_label, escalated, escalation_reason, response, created_at
		 FROM brief_runs WHERE id = $1`, id)

	var run BriefRun
	var reason, response sql.NullString
	err := row.Scan(&run.ID, &run.HotelID, &run.TravelerType, &run.Season, &run.Role,
		&run.EvidenceScore, &run.EvidenceLabel, &run.Escalated, &reason, &response, &run.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Errorf("postgres: get run %s: not found", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get run %s", id)
	}
	run.EscalationReason = reason.String
	run.Response = response.String
	return &run, nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, limit, offset int) ([]BriefRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, hotel_id, traveler_type, season, role, evidence_score, evidence_label, escalated, escalation_reason, response, created_at
		 FROM brief_runs ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var runs []BriefRun
	for rows.Next() {
		var run BriefRun
		var reason, response sql.NullString
		if err := rows.Scan(&run.ID, &run.HotelID, &run.TravelerType, &run.Season, &run.Role,
			&run.EvidenceScore, &run.EvidenceLabel, &run.Escalated, &reason, &response, &run.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan run")
		}
		run.EscalationReason = reason.String
		run.Response = response.String
		runs = append(runs, run)
	}
	return runs, eris.Wrap(rows.Err(), "postgres: iterate runs")
}
