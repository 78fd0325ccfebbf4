package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"

	"github.com/sells-group/strategy-cli/internal/model"
)

// DefaultScoring returns the product scoring table: capacity weights
// (sum = 1), caps, budget bands, ad viability limits and the value used for
// every unanswered advanced field. Load registers it as viper defaults, so
// it is the only copy.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		HoursWeight:     0.35,
		TeamWeight:      0.25,
		CameraWeight:    0.20,
		OutsourceWeight: 0.20,

		MaxWeeklyHours: 40,
		MaxTeamSize:    5,

		MicroBelow: 200,
		SmallMax:   1000,
		MediumMax:  5000,

		AcquisitionMargin: 0.3, // share of AOV we will pay to acquire a customer
		MaxSalesCycleDays: 30,

		EstimationThreshold: 15,

		Defaults: AnswerDefaults{
			MonthlyAdBudget:          0,
			MonthlyToolsBudget:       0,
			AOV:                      0,
			ConversionRate:           0,
			SalesCycleDays:           30,
			CustomerObjection:        "price",
			USP:                      "your unique value",
			PrimaryBusinessObjective: "Revenue",
			ObjectiveKPILabel:        "Result",
			ObjectiveTarget:          100,
			TeamExecutionCapacity:    1,
			WeeklyHoursCapacity:      5,
			CameraComfort:            1,
			WillingToOutsource:       model.OutsourceNo,
		},
	}
}

// setStructDefaults registers every field of value as a viper default under
// prefix, keyed by its mapstructure tag. Env overrides need a default per key.
func setStructDefaults(v *viper.Viper, prefix string, value any) error {
	var m map[string]any
	if err := mapstructure.Decode(value, &m); err != nil {
		return eris.Wrapf(err, "config: defaults for %s", prefix)
	}
	setNestedDefaults(v, prefix, m)
	return nil
}

func setNestedDefaults(v *viper.Viper, prefix string, m map[string]any) {
	for k, val := range m {
		key := prefix + "." + k
		if sub, ok := val.(map[string]any); ok {
			setNestedDefaults(v, key, sub)
			continue
		}
		v.SetDefault(key, val)
	}
}
