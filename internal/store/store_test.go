package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
)

func newTestSQLite(t *testing.T) Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() }) //nolint:errcheck
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testRun(kind model.RunKind, business string) *model.Run {
	return &model.Run{
		Kind:         kind,
		BusinessName: business,
		Email:        "owner@example.com",
		Input:        json.RawMessage(`{"industry":"Food & Beverage"}`),
		Result:       json.RawMessage(`{"name":"Social Media Strategy"}`),
	}
}

func storeTestSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("SaveAndGetRun", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		run := testRun(model.RunKindAdvanced, "Crumb & Co")
		run.WasEstimated = true
		require.NoError(t, s.SaveRun(ctx, run))
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.CreatedAt.IsZero())

		got, err := s.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, model.RunKindAdvanced, got.Kind)
		assert.Equal(t, "Crumb & Co", got.BusinessName)
		assert.Equal(t, "owner@example.com", got.Email)
		assert.True(t, got.WasEstimated)
		assert.JSONEq(t, string(run.Input), string(got.Input))
		assert.JSONEq(t, string(run.Result), string(got.Result))
		assert.WithinDuration(t, run.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("SaveRunKeepsID", func(t *testing.T) {
		s := newStore(t)
		run := testRun(model.RunKindBasic, "Crumb & Co")
		run.ID = "fixed-id"
		require.NoError(t, s.SaveRun(context.Background(), run))
		assert.Equal(t, "fixed-id", run.ID)

		_, err := s.GetRun(context.Background(), "fixed-id")
		assert.NoError(t, err)
	})

	t.Run("GetRunNotFound", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetRun(context.Background(), "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ListRunsNewestFirst", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		for i, name := range []string{"Alpha", "Beta", "Gamma"} {
			run := testRun(model.RunKindBasic, name)
			run.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			require.NoError(t, s.SaveRun(ctx, run))
		}

		runs, err := s.ListRuns(ctx, RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, "Gamma", runs[0].BusinessName)
		assert.Equal(t, "Alpha", runs[2].BusinessName)

		page, err := s.ListRuns(ctx, RunFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "Beta", page[0].BusinessName)
	})

	t.Run("ListRunsFilters", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.SaveRun(ctx, testRun(model.RunKindBasic, "Alpha")))
		require.NoError(t, s.SaveRun(ctx, testRun(model.RunKindAdvanced, "Alpha")))
		require.NoError(t, s.SaveRun(ctx, testRun(model.RunKindAdvanced, "Beta")))

		advanced, err := s.ListRuns(ctx, RunFilter{Kind: model.RunKindAdvanced})
		require.NoError(t, err)
		assert.Len(t, advanced, 2)

		alpha, err := s.ListRuns(ctx, RunFilter{Kind: model.RunKindAdvanced, BusinessName: "Alpha"})
		require.NoError(t, err)
		require.Len(t, alpha, 1)
		assert.Equal(t, model.RunKindAdvanced, alpha[0].Kind)

		none, err := s.ListRuns(ctx, RunFilter{BusinessName: "Nobody"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("SaveRuns", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		runs := []*model.Run{testRun(model.RunKindBasic, "Alpha"), testRun(model.RunKindBasic, "Beta")}
		require.NoError(t, s.SaveRuns(ctx, runs))
		for _, r := range runs {
			assert.NotEmpty(t, r.ID)
		}

		all, err := s.ListRuns(ctx, RunFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		assert.NoError(t, s.SaveRuns(ctx, nil))
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(context.Background()))
	})
}

func TestSQLiteStore(t *testing.T) {
	storeTestSuite(t, newTestSQLite)
}

func TestSQLite_MigrateIdempotent(t *testing.T) {
	s := newTestSQLite(t)
	assert.NoError(t, s.Migrate(context.Background()))
}

func TestSQLite_SaveRunsDuplicateRollsBack(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	a := testRun(model.RunKindBasic, "Alpha")
	a.ID = "dup"
	b := testRun(model.RunKindBasic, "Beta")
	b.ID = "dup"

	err := s.SaveRuns(ctx, []*model.Run{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite: insert run dup")

	runs, err := s.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpen_None(t *testing.T) {
	s, err := Open(context.Background(), config.StoreConfig{Driver: "none"})
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := config.StoreConfig{Driver: "sqlite", DatabaseURL: filepath.Join(t.TempDir(), "history.db")}
	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, s)
	defer s.Close() //nolint:errcheck

	_, ok := s.(*SQLiteStore)
	assert.True(t, ok)

	runs, err := s.ListRuns(context.Background(), RunFilter{})
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown driver "mysql"`)
}

func TestOpen_PostgresBadURL(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "postgres", DatabaseURL: "://bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: parse config")
}
