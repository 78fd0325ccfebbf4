package scoring

import (
	"strings"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
)

// advancedFieldCount is the number of questions in the advanced tier.
const advancedFieldCount = 18

// Resolved is an advanced answer set with every default applied. Scoring
// functions and section builders read only from Resolved, so the defaults
// table in config.AnswerDefaults is the single place a missing answer is
// filled in.
type Resolved struct {
	MonthlyAdBudget          float64
	MonthlyToolsBudget       float64
	AOV                      float64
	ConversionRate           float64 // percent
	SalesCycleDays           float64
	CustomerObjection        string // first listed objection
	USP                      string
	PrimaryBusinessObjective string
	ObjectiveKPILabel        string
	ObjectiveTarget          float64
	TeamExecutionCapacity    float64
	WeeklyHoursCapacity      float64
	CameraComfort            float64
	WillingToOutsource       bool

	// Supplied counts the advanced fields that were answered at all.
	Supplied int
}

// Resolve applies cfg.Defaults to a partial advanced answer set. A numeric
// answer that is absent or not positive takes its default, as does a blank
// text answer. adv may be nil.
func Resolve(adv *model.AdvancedAnswers, cfg config.ScoringConfig) Resolved {
	if adv == nil {
		adv = &model.AdvancedAnswers{}
	}
	d := cfg.Defaults

	r := Resolved{
		MonthlyAdBudget:          number(adv.MonthlyAdBudget, d.MonthlyAdBudget),
		MonthlyToolsBudget:       number(adv.MonthlyToolsBudget, d.MonthlyToolsBudget),
		AOV:                      number(adv.AOV, d.AOV),
		ConversionRate:           number(adv.ConversionRate, d.ConversionRate),
		SalesCycleDays:           number(adv.SalesCycle, d.SalesCycleDays),
		CustomerObjection:        text(firstObjection(adv.CustomerObjections), d.CustomerObjection),
		USP:                      text(adv.USP, d.USP),
		PrimaryBusinessObjective: text(adv.PrimaryBusinessObjective, d.PrimaryBusinessObjective),
		ObjectiveKPILabel:        text(adv.PrimaryBusinessObjective, d.ObjectiveKPILabel),
		ObjectiveTarget:          number(adv.ObjectiveTarget, d.ObjectiveTarget),
		TeamExecutionCapacity:    number(adv.TeamExecutionCapacity, d.TeamExecutionCapacity),
		WeeklyHoursCapacity:      number(adv.WeeklyHoursCapacity, d.WeeklyHoursCapacity),
		CameraComfort:            number(adv.CameraComfort, d.CameraComfort),
		WillingToOutsource:       text(adv.WillingToOutsource, d.WillingToOutsource) == model.OutsourceYes,
		Supplied:                 adv.Supplied(),
	}
	return r
}

// Estimated reports whether too few advanced fields were answered for the
// result to be presented as exact.
func (r Resolved) Estimated(cfg config.ScoringConfig) bool {
	return r.Supplied < cfg.EstimationThreshold
}

func number(v *float64, def float64) float64 {
	if v == nil || *v <= 0 {
		return def
	}
	return *v
}

func text(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return strings.TrimSpace(*v)
}

func firstObjection(objections *string) *string {
	if objections == nil {
		return nil
	}
	first, _, _ := strings.Cut(*objections, ",")
	return &first
}
