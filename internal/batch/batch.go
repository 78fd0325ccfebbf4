// Package batch generates strategies for many answer files concurrently.
package batch

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/strategy-cli/internal/pipeline"
	"github.com/sells-group/strategy-cli/internal/questionnaire"
	"github.com/sells-group/strategy-cli/internal/render"
)

// Result pairs an input file with its generated strategy. Document is set
// when the runner renders.
type Result struct {
	Path     string
	Outcome  *pipeline.Outcome
	Document []byte
}

// Runner fans answer files out over a bounded worker group.
type Runner struct {
	pipeline    *pipeline.Pipeline
	concurrency int
	advanced    bool
	renderer    *render.Renderer
	format      render.Format
}

// NewRunner creates a Runner. When advanced is set every form goes through
// the advanced engine; otherwise only forms with an advanced section do.
func NewRunner(p *pipeline.Pipeline, concurrency int, advanced bool) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{pipeline: p, concurrency: concurrency, advanced: advanced}
}

// WithRender makes the runner render every strategy in format f before
// anything is saved.
func (r *Runner) WithRender(rd *render.Renderer, f render.Format) *Runner {
	r.renderer = rd
	r.format = f
	return r
}

// Run generates one strategy per path. Results keep the order of paths. The
// first failure cancels the remaining work and nothing is stored.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	start := time.Now()
	zap.L().Info("batch: starting",
		zap.Int("files", len(paths)),
		zap.Int("concurrency", r.concurrency),
	)

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			form, err := questionnaire.LoadFile(path)
			if err != nil {
				return eris.Wrapf(err, "batch: %s", path)
			}
			out, err := r.pipeline.Generate(form, r.advanced || form.HasAdvanced())
			if err != nil {
				return eris.Wrapf(err, "batch: %s", path)
			}
			res := Result{Path: path, Outcome: out}
			if r.renderer != nil {
				if res.Document, err = out.Render(gctx, r.renderer, r.format); err != nil {
					return eris.Wrapf(err, "batch: render %s", path)
				}
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	outcomes := make([]*pipeline.Outcome, len(results))
	for i := range results {
		outcomes[i] = results[i].Outcome
	}
	if err := r.pipeline.Save(ctx, outcomes); err != nil {
		return nil, eris.Wrap(err, "batch: save")
	}
	for _, o := range outcomes {
		pipeline.LogOutcome(o)
	}

	zap.L().Info("batch: complete",
		zap.Int("generated", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}
