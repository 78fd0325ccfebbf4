// Package pipeline turns a submitted questionnaire form into a strategy and
// records the generation in the history store.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/strategy-cli/internal/advanced"
	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/questionnaire"
	"github.com/sells-group/strategy-cli/internal/render"
	"github.com/sells-group/strategy-cli/internal/store"
	"github.com/sells-group/strategy-cli/internal/strategy"
)

// ErrRender marks a generation whose document could not be rendered.
var ErrRender = eris.New("pipeline: render failed")

// Pipeline validates forms, runs the matching engine and stores the run.
// A nil store disables history.
type Pipeline struct {
	engine *advanced.Engine
	store  store.Store
}

// New creates a Pipeline. st may be nil.
func New(engine *advanced.Engine, st store.Store) *Pipeline {
	return &Pipeline{engine: engine, store: st}
}

// Outcome is the result of one generation. Exactly one of Basic and
// Advanced is set, matching Kind.
type Outcome struct {
	Kind     model.RunKind
	Lead     model.Lead
	Basic    *model.StrategyResult
	Advanced *model.AdvancedStrategyResult
	Run      *model.Run
}

// Result returns whichever strategy the outcome carries.
func (o *Outcome) Result() any {
	if o.Kind == model.RunKindAdvanced {
		return o.Advanced
	}
	return o.Basic
}

// Render renders the outcome's strategy in format f.
func (o *Outcome) Render(ctx context.Context, r *render.Renderer, f render.Format) ([]byte, error) {
	if o.Kind == model.RunKindAdvanced {
		return r.Advanced(ctx, f, o.Advanced)
	}
	return r.Basic(ctx, f, o.Basic)
}

// Generate runs the basic engine, or the advanced engine when advanced is
// set. It never touches the store.
func (p *Pipeline) Generate(form *questionnaire.Form, advanced bool) (*Outcome, error) {
	data, err := form.Basic()
	if err != nil {
		return nil, err
	}

	out := &Outcome{Kind: model.RunKindBasic, Lead: form.Lead}
	var wasEstimated bool
	if advanced {
		adv, err := form.AdvancedAnswers()
		if err != nil {
			return nil, err
		}
		res, err := p.engine.Generate(data, adv)
		if err != nil {
			return nil, err
		}
		out.Kind = model.RunKindAdvanced
		out.Advanced = res
		wasEstimated = res.WasEstimated
	} else {
		res, err := strategy.Generate(data)
		if err != nil {
			return nil, err
		}
		out.Basic = res
	}

	out.Run, err = model.NewRun(out.Kind, form.Lead, form, out.Result(), wasEstimated)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: encode run")
	}
	return out, nil
}

// Run generates a strategy, renders it in format f and then saves the run
// when history is enabled. A render failure stores nothing.
func (p *Pipeline) Run(ctx context.Context, form *questionnaire.Form, advanced bool, r *render.Renderer, f render.Format) (*Outcome, []byte, error) {
	out, err := p.Generate(form, advanced)
	if err != nil {
		return nil, nil, err
	}
	doc, err := out.Render(ctx, r, f)
	if err != nil {
		return nil, nil, eris.Wrapf(ErrRender, "format %s: %v", f, err)
	}
	if p.store != nil {
		if err := p.store.SaveRun(ctx, out.Run); err != nil {
			return nil, nil, eris.Wrap(err, "pipeline: save run")
		}
	}
	LogOutcome(out)
	return out, doc, nil
}

// Save stores outcomes produced by Generate in one call.
func (p *Pipeline) Save(ctx context.Context, outcomes []*Outcome) error {
	if p.store == nil || len(outcomes) == 0 {
		return nil
	}
	runs := make([]*model.Run, len(outcomes))
	for i, o := range outcomes {
		runs[i] = o.Run
	}
	return eris.Wrap(p.store.SaveRuns(ctx, runs), "pipeline: save runs")
}

// LogOutcome writes the per-generation log line.
func LogOutcome(out *Outcome) {
	fields := []zap.Field{
		zap.String("business", out.Lead.BusinessName),
		zap.String("kind", string(out.Kind)),
		zap.String("run_id", out.Run.ID),
	}
	switch out.Kind {
	case model.RunKindAdvanced:
		fields = append(fields,
			zap.Int("capacity_score", out.Advanced.CapacityScore),
			zap.Bool("was_estimated", out.Advanced.WasEstimated),
			zap.Bool("ads_viable", out.Advanced.AdPlan.IsViable),
		)
	default:
		fields = append(fields, zap.Int("platforms", len(out.Basic.Platforms)))
	}
	zap.L().Info("pipeline: strategy generated", fields...)
}
