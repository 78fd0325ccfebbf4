package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategy-cli/internal/model"
)

func TestCapacityScore(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	tests := []struct {
		name string
		in   CapacityInput
		want int
	}{
		{"maximum", CapacityInput{WeeklyHours: 40, TeamSize: 5, CameraComfort: 5, Outsource: true}, 100},
		{"defaults", CapacityInput{WeeklyHours: 5, TeamSize: 1, CameraComfort: 1}, 9},
		{"hours capped", CapacityInput{WeeklyHours: 80, TeamSize: 5, CameraComfort: 5, Outsource: true}, 100},
		{"team capped", CapacityInput{WeeklyHours: 40, TeamSize: 50, CameraComfort: 5, Outsource: true}, 100},
		{"half everything", CapacityInput{WeeklyHours: 20, TeamSize: 2.5, CameraComfort: 3}, 40},
		{"outsource only", CapacityInput{CameraComfort: 1, Outsource: true}, 20},
		{"zeroes", CapacityInput{}, 0},
		{"camera above scale", CapacityInput{CameraComfort: 9}, 20},
		{"negative inputs", CapacityInput{WeeklyHours: -10, TeamSize: -3, CameraComfort: -2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CapacityScore(tt.in, cfg)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestCapacityScore_DefaultsWhenAbsent(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	r := Resolve(nil, cfg)
	// hours 5/40*0.35 = 0.04375, team 1/5*0.25 = 0.05, camera 0, outsource 0 -> 9.375 -> 9
	assert.Equal(t, 9, CapacityScore(CapacityInputFrom(r), cfg))
}

func TestBudgetBand(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	tests := []struct {
		budget float64
		want   model.BudgetBand
	}{
		{0, model.BandMicro},
		{199, model.BandMicro},
		{199.99, model.BandMicro},
		{200, model.BandSmall},
		{1000, model.BandSmall},
		{1001, model.BandMedium},
		{5000, model.BandMedium},
		{5001, model.BandGrowth},
		{100000, model.BandGrowth},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BudgetBand(tt.budget, cfg), "budget %v", tt.budget)
	}
}

func TestAdViability(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	t.Run("missing aov", func(t *testing.T) {
		t.Parallel()
		v := AdViability(0, 5, 10, cfg)
		assert.False(t, v.IsViable)
		assert.Zero(t, v.TargetROAS)
		assert.Contains(t, v.Reasoning, "organic growth")
	})

	t.Run("missing conversion rate", func(t *testing.T) {
		t.Parallel()
		v := AdViability(100, 0, 10, cfg)
		assert.False(t, v.IsViable)
		assert.Zero(t, v.TargetROAS)
	})

	t.Run("sales cycle veto", func(t *testing.T) {
		t.Parallel()
		v := AdViability(100, 5, 45, cfg)
		assert.False(t, v.IsViable)
		assert.Contains(t, v.Reasoning, "45 days")
		assert.InDelta(t, 100/30.0, v.TargetROAS, 0.0001)
	})

	t.Run("cycle at limit is viable", func(t *testing.T) {
		t.Parallel()
		v := AdViability(100, 5, 30, cfg)
		assert.True(t, v.IsViable)
	})

	t.Run("viable", func(t *testing.T) {
		t.Parallel()
		v := AdViability(100, 5, 14, cfg)
		require.True(t, v.IsViable)
		assert.InDelta(t, 30, v.MaxCPA, 0.0001)
		assert.InDelta(t, 3.3333, v.TargetROAS, 0.0001)
		assert.Equal(t, "With an AOV of $100, paid traffic is viable. We will target a minimum ROAS of 3.3x.", v.Reasoning)
	})

	t.Run("roas follows margin", func(t *testing.T) {
		t.Parallel()
		c := DefaultConfig()
		c.AcquisitionMargin = 0.5
		v := AdViability(80, 2, 7, c)
		require.True(t, v.IsViable)
		assert.InDelta(t, 2.0, v.TargetROAS, 0.0001)
	})
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "250", FormatAmount(250))
	assert.Equal(t, "30", FormatAmount(100*0.3))
	assert.Equal(t, "12.5", FormatAmount(12.5))
	assert.Equal(t, "29.97", FormatAmount(29.97))
	assert.Equal(t, "0.33", FormatAmount(1.0/3))
}
