package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "briefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func sampleRun(id string, createdAt time.Time) BriefRun {
	return BriefRun{
		ID:               id,
		HotelID:          "amanzoe_gr",
		TravelerType:     "honeymoon",
		Season:           "late_september",
		Role:             "sales",
		EvidenceScore:    0.69,
		EvidenceLabel:    "Medium",
		Escalated:        false,
		EscalationReason: "",
		Response:         `{"sections":{}}`,
		CreatedAt:        createdAt,
	}
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("save and get round trip", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLite(t)
		run := sampleRun("run-1", time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
		require.NoError(t, s.SaveRun(ctx, run))

		got, err := s.GetRun(ctx, "run-1")
		require.NoError(t, err)

		assert.Equal(t, run.HotelID, got.HotelID)
		assert.Equal(t, run.EvidenceScore, got.EvidenceScore)
		assert.Equal(t, run.EvidenceLabel, got.EvidenceLabel)
		assert.Equal(t, run.Response, got.Response)
		assert.False(t, got.Escalated)
	})

	t.Run("get unknown run errors", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLite(t)
		_, err := s.GetRun(ctx, "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("list newest first", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLite(t)
		base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.SaveRun(ctx, sampleRun("run-old", base.Add(-time.Hour))))
		require.NoError(t, s.SaveRun(ctx, sampleRun("run-new", base)))

		runs, err := s.ListRuns(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, "run-new", runs[0].ID)
		assert.Equal(t, "run-old", runs[1].ID)
	})

	t.Run("list respects limit and offset", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLite(t)
		base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
		for i, id := range []string{"a", "b", "c"} {
			require.NoError(t, s.SaveRun(ctx, sampleRun(id, base.Add(time.Duration(i)*time.Minute))))
		}

		runs, err := s.ListRuns(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "b", runs[0].ID)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLite(t)
		run := sampleRun("dup", time.Now().UTC())
		require.NoError(t, s.SaveRun(ctx, run))
		assert.Error(t, s.SaveRun(ctx, run))
	})
}
