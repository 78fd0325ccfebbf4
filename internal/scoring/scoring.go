package scoring

import (
	"fmt"
	"math"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
)

// CapacityInput is the raw material of the capacity score.
type CapacityInput struct {
	WeeklyHours   float64
	TeamSize      float64
	CameraComfort float64 // 1-5
	Outsource     bool
}

// CapacityInputFrom extracts the capacity inputs from a resolved answer set.
func CapacityInputFrom(r Resolved) CapacityInput {
	return CapacityInput{
		WeeklyHours:   r.WeeklyHoursCapacity,
		TeamSize:      r.TeamExecutionCapacity,
		CameraComfort: r.CameraComfort,
		Outsource:     r.WillingToOutsource,
	}
}

// CapacityScore returns a 0-100 composite of time, team, on-camera comfort
// and outsourcing willingness. Each input is normalized to [0,1] before the
// weights are applied.
func CapacityScore(in CapacityInput, cfg config.ScoringConfig) int {
	hours := clamp01(in.WeeklyHours / cfg.MaxWeeklyHours)
	team := clamp01(in.TeamSize / cfg.MaxTeamSize)
	camera := clamp01((in.CameraComfort - 1) / 4)
	outsource := 0.0
	if in.Outsource {
		outsource = 1
	}

	weighted := hours*cfg.HoursWeight +
		team*cfg.TeamWeight +
		camera*cfg.CameraWeight +
		outsource*cfg.OutsourceWeight

	// Normalize in case configured weights do not sum exactly to 1.
	if sum := WeightSum(cfg); sum > 0 {
		weighted /= sum
	}

	score := int(math.Round(weighted * 100))
	return max(0, min(100, score))
}

// BudgetBand classifies a monthly ad budget.
func BudgetBand(monthlyAdBudget float64, cfg config.ScoringConfig) model.BudgetBand {
	switch {
	case monthlyAdBudget < cfg.MicroBelow:
		return model.BandMicro
	case monthlyAdBudget <= cfg.SmallMax:
		return model.BandSmall
	case monthlyAdBudget <= cfg.MediumMax:
		return model.BandMedium
	default:
		return model.BandGrowth
	}
}

// Viability is the paid-advertising verdict.
type Viability struct {
	IsViable   bool
	Reasoning  string
	MaxCPA     float64
	TargetROAS float64
}

// AdViability decides whether paid traffic is recommended. Missing AOV or
// conversion data rules ads out; otherwise a sales cycle longer than the plan
// vetoes an otherwise healthy AOV/conversion signal.
func AdViability(aov, conversionRatePct, salesCycleDays float64, cfg config.ScoringConfig) Viability {
	if aov <= 0 || conversionRatePct <= 0 {
		return Viability{
			Reasoning: "Paid traffic is not recommended without a clear Average Order Value and Conversion Rate. Focus on organic growth to establish these metrics.",
		}
	}

	maxCPA := aov * cfg.AcquisitionMargin
	targetROAS := aov / maxCPA

	if salesCycleDays > cfg.MaxSalesCycleDays {
		return Viability{
			Reasoning:  fmt.Sprintf("With a sales cycle of %s days, it's unlikely you'll see a positive return on ad spend within a 30-day plan. Focus on organic nurturing.", FormatAmount(salesCycleDays)),
			MaxCPA:     maxCPA,
			TargetROAS: targetROAS,
		}
	}

	return Viability{
		IsViable:   true,
		Reasoning:  fmt.Sprintf("With an AOV of $%s, paid traffic is viable. We will target a minimum ROAS of %.1fx.", FormatAmount(aov), targetROAS),
		MaxCPA:     maxCPA,
		TargetROAS: targetROAS,
	}
}

// FormatAmount renders a number with at most two decimals and no trailing
// zeros: 250 -> "250", 29.97 -> "29.97", 12.5 -> "12.5".
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", math.Round(v*100)/100)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
