// Package advanced derives the advanced-tier 30-day action plan from a
// complete basic questionnaire plus a partial advanced answer set.
package advanced

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/scoring"
)

// Engine generates advanced strategies under one scoring configuration.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg config.ScoringConfig
}

// New creates an Engine after checking cfg.
func New(cfg config.ScoringConfig) (*Engine, error) {
	if err := scoring.ValidateConfig(cfg); err != nil {
		return nil, eris.Wrap(err, "advanced: scoring config")
	}
	return &Engine{cfg: cfg}, nil
}

// Default returns an Engine using scoring.DefaultConfig.
func Default() *Engine {
	return &Engine{cfg: scoring.DefaultConfig()}
}

// Generate builds the advanced strategy. Missing advanced answers fall back
// to the configured defaults and mark the result as estimated; adv may be
// nil. Missing required basic answers fail with a *model.FieldError.
func (e *Engine) Generate(data model.QuestionnaireData, adv *model.AdvancedAnswers) (*model.AdvancedStrategyResult, error) {
	if err := data.Validate(); err != nil {
		return nil, eris.Wrap(err, "advanced: invalid questionnaire")
	}

	r := scoring.Resolve(adv, e.cfg)
	viability := scoring.AdViability(r.AOV, r.ConversionRate, r.SalesCycleDays, e.cfg)

	roas := 0.0
	if viability.IsViable {
		roas = viability.TargetROAS
	}

	return &model.AdvancedStrategyResult{
		Name:                 data.Name,
		BusinessName:         data.BusinessName,
		WasEstimated:         r.Estimated(e.cfg),
		WeeklySummaries:      weeklySummaries(r, viability),
		DailyPlan:            dailyPlan(&data, r),
		ContentTemplates:     contentTemplates(r),
		AdPlan:               adPlan(r, viability, e.cfg),
		RepurposingMatrix:    repurposingMatrix(),
		OnboardingChecklist:  onboardingChecklist(),
		MeasurementDashboard: measurementDashboard(r),
		CapacityScore:        scoring.CapacityScore(scoring.CapacityInputFrom(r), e.cfg),
		ROASTarget:           roas,
	}, nil
}
