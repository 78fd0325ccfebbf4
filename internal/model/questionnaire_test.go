package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validData() QuestionnaireData {
	return QuestionnaireData{
		Lead:                    Lead{Name: "Priya", Email: "priya@example.com", BusinessName: "Chai Co"},
		Country:                 "India",
		Industry:                "Food & Beverage",
		BusinessType:            BusinessTypeB2C,
		BusinessAge:             "Just starting (0-6 months)",
		TeamSize:                "Just me (solo)",
		TimeCapacity:            5,
		PrimaryGoals:            MultiChoice{"Build community"},
		BrandVoice:              VoiceFunPlayful,
		CompetitorAnalysis:      "Moderately active",
		PreviousExperience:      "Some basic knowledge",
		ContentCreationCapacity: "Basic - can create simple content",
		AutomationPreference:    "Open to automation for basic tasks",
		MeasurableGoals:         "Follower growth",
		Seasonality:             "Somewhat seasonal",
		GeographicFocus:         "National",
		BrandStage:              "Building brand awareness",
	}
}

func TestQuestionnaireDataValidate(t *testing.T) {
	t.Parallel()

	d := validData()
	require.NoError(t, d.Validate())

	tests := []struct {
		name   string
		mutate func(*QuestionnaireData)
		field  string
		kind   FieldErrorKind
	}{
		{"missing name", func(d *QuestionnaireData) { d.Name = "" }, "name", FieldMissing},
		{"missing country", func(d *QuestionnaireData) { d.Country = "" }, "country", FieldMissing},
		{"missing brand voice", func(d *QuestionnaireData) { d.BrandVoice = "" }, "brand_voice", FieldMissing},
		{"no goals", func(d *QuestionnaireData) { d.PrimaryGoals = nil }, "primary_goals", FieldMissing},
		{"negative budget", func(d *QuestionnaireData) { d.MonthlyBudget = -1 }, "monthly_budget", FieldOutOfRange},
		{"zero time capacity", func(d *QuestionnaireData) { d.TimeCapacity = 0 }, "time_capacity", FieldOutOfRange},
		{"negative time capacity", func(d *QuestionnaireData) { d.TimeCapacity = -2 }, "time_capacity", FieldOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := validData()
			tt.mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			fe, ok := AsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.kind, fe.Kind)
		})
	}
}

func TestHasCurrentPlatforms(t *testing.T) {
	t.Parallel()

	d := validData()
	assert.False(t, d.HasCurrentPlatforms())

	d.CurrentPlatforms = MultiChoice{PlatformNone}
	assert.False(t, d.HasCurrentPlatforms())

	d.CurrentPlatforms = MultiChoice{"Instagram", "Facebook"}
	assert.True(t, d.HasCurrentPlatforms())
}

func TestAdvancedAnswersSupplied(t *testing.T) {
	t.Parallel()

	var nilAnswers *AdvancedAnswers
	assert.Equal(t, 0, nilAnswers.Supplied())
	assert.Equal(t, 0, (&AdvancedAnswers{}).Supplied())

	a := &AdvancedAnswers{
		AOV:                Float(0),
		USP:                String(""),
		WillingToOutsource: String(OutsourceYes),
	}
	// Present-but-zero still counts as supplied.
	assert.Equal(t, 3, a.Supplied())
}

func TestPriorityRank(t *testing.T) {
	t.Parallel()

	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, 0, Priority("Urgent").Rank())
}

func TestNewRun(t *testing.T) {
	t.Parallel()

	lead := Lead{Name: "Sam", Email: "sam@example.com", BusinessName: "Sam's Bikes"}
	run, err := NewRun(RunKindBasic, lead, map[string]string{"country": "Canada"}, map[string]int{"platforms": 2}, false)
	require.NoError(t, err)
	assert.Equal(t, RunKindBasic, run.Kind)
	assert.Equal(t, "Sam's Bikes", run.BusinessName)
	assert.JSONEq(t, `{"country":"Canada"}`, string(run.Input))
	assert.JSONEq(t, `{"platforms":2}`, string(run.Result))
	assert.Empty(t, run.ID)
}
