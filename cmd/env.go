package main

import (
	"context"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/strategy-cli/internal/advanced"
	"github.com/sells-group/strategy-cli/internal/pipeline"
	"github.com/sells-group/strategy-cli/internal/render"
	"github.com/sells-group/strategy-cli/internal/store"
)

// pipelineEnv bundles the collaborators shared by generate, batch and serve.
type pipelineEnv struct {
	Store    store.Store
	Pipeline *pipeline.Pipeline
	Renderer *render.Renderer
}

func (e *pipelineEnv) Close() {
	if e.Store != nil {
		e.Store.Close() //nolint:errcheck
	}
}

// initEnv validates cfg for mode and wires the store, engines and renderer.
func initEnv(ctx context.Context, mode string) (*pipelineEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	engine, err := advanced.New(cfg.Scoring)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}

	return &pipelineEnv{
		Store:    st,
		Pipeline: pipeline.New(engine, st),
		Renderer: render.NewRenderer(render.NewPDFRenderer(cfg.Render)),
	}, nil
}

// initStore opens the history store for the runs commands. History must be
// enabled.
func initStore(ctx context.Context) (store.Store, error) {
	if err := cfg.Validate("generate"); err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if st == nil {
		return nil, eris.New("run history is disabled: set store.driver to sqlite or postgres")
	}
	return st, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return eris.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}
