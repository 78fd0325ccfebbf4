// Package scoring holds the pure scoring and classification functions shared
// by the strategy engines, along with the central table of answer defaults.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
)

// DefaultConfig returns the product scoring table. Capacity weights sum to 1.
func DefaultConfig() config.ScoringConfig {
	return config.DefaultScoring()
}

// WeightSum returns the sum of the capacity weights.
func WeightSum(c config.ScoringConfig) float64 {
	return c.HoursWeight + c.TeamWeight + c.CameraWeight + c.OutsourceWeight
}

// ValidateConfig checks that a ScoringConfig is internally consistent.
func ValidateConfig(c config.ScoringConfig) error {
	var errs []string

	weights := []struct {
		name  string
		value float64
	}{
		{"hours_weight", c.HoursWeight},
		{"team_weight", c.TeamWeight},
		{"camera_weight", c.CameraWeight},
		{"outsource_weight", c.OutsourceWeight},
	}
	for _, w := range weights {
		if w.value < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", w.name))
		}
	}
	if sum := WeightSum(c); math.Abs(sum-1) > 0.001 {
		errs = append(errs, fmt.Sprintf("capacity weights should sum to 1, got %.3f", sum))
	}

	if c.MaxWeeklyHours <= 0 {
		errs = append(errs, "max_weekly_hours must be > 0")
	}
	if c.MaxTeamSize <= 0 {
		errs = append(errs, "max_team_size must be > 0")
	}

	if c.MicroBelow < 0 || c.SmallMax < c.MicroBelow || c.MediumMax < c.SmallMax {
		errs = append(errs, "budget bands must satisfy 0 <= micro_below <= small_max <= medium_max")
	}

	if c.AcquisitionMargin <= 0 || c.AcquisitionMargin > 1 {
		errs = append(errs, "acquisition_margin must be in (0, 1]")
	}
	if c.MaxSalesCycleDays <= 0 {
		errs = append(errs, "max_sales_cycle_days must be > 0")
	}
	if c.EstimationThreshold < 0 || c.EstimationThreshold > advancedFieldCount {
		errs = append(errs, fmt.Sprintf("estimation_threshold must be between 0 and %d", advancedFieldCount))
	}

	d := c.Defaults
	if d.CameraComfort < 1 || d.CameraComfort > 5 {
		errs = append(errs, "defaults.camera_comfort must be between 1 and 5")
	}
	if d.TeamExecutionCapacity < 1 {
		errs = append(errs, "defaults.team_execution_capacity must be >= 1")
	}
	if d.WeeklyHoursCapacity <= 0 {
		errs = append(errs, "defaults.weekly_hours_capacity must be > 0")
	}
	if d.SalesCycleDays <= 0 {
		errs = append(errs, "defaults.sales_cycle_days must be > 0")
	}
	if d.ObjectiveTarget <= 0 {
		errs = append(errs, "defaults.objective_target must be > 0")
	}
	if d.WillingToOutsource != model.OutsourceYes && d.WillingToOutsource != model.OutsourceNo {
		errs = append(errs, "defaults.willing_to_outsource must be yes or no")
	}
	texts := []struct {
		name  string
		value string
	}{
		{"defaults.customer_objection", d.CustomerObjection},
		{"defaults.usp", d.USP},
		{"defaults.primary_business_objective", d.PrimaryBusinessObjective},
		{"defaults.objective_kpi_label", d.ObjectiveKPILabel},
	}
	for _, t := range texts {
		if strings.TrimSpace(t.value) == "" {
			errs = append(errs, t.name+" must not be empty")
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("scoring: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
