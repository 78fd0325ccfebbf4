// Package store persists generated strategies so they can be listed and
// fetched again from the CLI and the HTTP API.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/resilience"
)

// ErrNotFound is returned by GetRun when no run has the requested id.
var ErrNotFound = eris.New("store: run not found")

const defaultListLimit = 100

// RunFilter narrows ListRuns. Zero values match everything.
type RunFilter struct {
	Kind         model.RunKind
	BusinessName string
	Limit        int
	Offset       int
}

// Store is the generation history backend.
type Store interface {
	// SaveRun assigns ID and CreatedAt when unset and inserts the run.
	SaveRun(ctx context.Context, run *model.Run) error
	// SaveRuns inserts many runs at once. Batch generation uses it.
	SaveRuns(ctx context.Context, runs []*model.Run) error
	GetRun(ctx context.Context, id string) (*model.Run, error)
	// ListRuns returns runs newest first.
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg.Driver and migrates it. The "none"
// driver returns a nil Store; callers treat that as history disabled.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case "", "none":
		return nil, nil
	case "sqlite":
		s, err = NewSQLite(cfg.DatabaseURL)
	case "postgres":
		retry := resilience.DefaultRetryConfig()
		retry.OnRetry = resilience.RetryLogger("postgres connect")
		s, err = resilience.Do(ctx, retry, func(ctx context.Context) (Store, error) {
			return NewPostgres(ctx, cfg.DatabaseURL, &PoolConfig{MaxConns: cfg.MaxConns, MinConns: cfg.MinConns})
		})
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close() //nolint:errcheck
		return nil, err
	}
	return s, nil
}

func stamp(run *model.Run) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
}

func limitOf(filter RunFilter) int {
	if filter.Limit <= 0 {
		return defaultListLimit
	}
	return filter.Limit
}

type scannable interface {
	Scan(dest ...any) error
}

const runColumns = `id, kind, business_name, email, input, result, was_estimated, created_at`

func scanRun(row scannable) (*model.Run, error) {
	var (
		r             model.Run
		kind          string
		input, result []byte
	)
	if err := row.Scan(&r.ID, &kind, &r.BusinessName, &r.Email, &input, &result, &r.WasEstimated, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.Kind = model.RunKind(kind)
	r.Input = input
	r.Result = result
	return &r, nil
}
