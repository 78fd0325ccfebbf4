package questionnaire

import (
	"github.com/sells-group/strategy-cli/internal/model"
)

// BuildBasic assembles a complete QuestionnaireData from the lead and
// decoded basic answers. Any unanswered required question is reported as a
// FieldError.
func BuildBasic(lead model.Lead, answers model.Answers) (model.QuestionnaireData, error) {
	if missing := Basic().Missing(answers); len(missing) > 0 {
		return model.QuestionnaireData{}, model.NewFieldError(missing[0], model.FieldMissing)
	}

	choice := func(id string) string { v, _ := answers.Choice(id); return v }
	text := func(id string) string { v, _ := answers.Text(id); return v }
	multi := func(id string) model.MultiChoice { v, _ := answers.MultiChoice(id); return v }
	number := func(id string) float64 { v, _ := answers.Number(id); return v }

	data := model.QuestionnaireData{
		Lead:                    lead,
		Country:                 choice("country"),
		Industry:                choice("industry"),
		BusinessType:            choice("business_type"),
		TargetAudience:          text("target_audience"),
		BusinessAge:             choice("business_age"),
		TeamSize:                choice("team_size"),
		MonthlyBudget:           number("monthly_budget"),
		TimeCapacity:            number("time_capacity"),
		PrimaryGoals:            multi("primary_goals"),
		ThirtyDayGoal:           text("thirty_day_goal"),
		CurrentPlatforms:        multi("current_platforms"),
		ContentTypes:            multi("content_types"),
		BrandVoice:              choice("brand_voice"),
		CurrentOffers:           text("current_offers"),
		CompetitorAnalysis:      choice("competitor_analysis"),
		PreviousExperience:      choice("previous_experience"),
		ContentCreationCapacity: choice("content_creation_capacity"),
		AutomationPreference:    choice("automation_preference"),
		MeasurableGoals:         choice("measurable_goals"),
		Seasonality:             choice("seasonality"),
		GeographicFocus:         choice("geographic_focus"),
		BrandStage:              choice("brand_stage"),
		Challenges:              text("challenges"),
	}
	if err := data.Validate(); err != nil {
		return model.QuestionnaireData{}, err
	}
	return data, nil
}

// BuildAdvanced maps decoded advanced answers onto the partial record.
// Unanswered questions stay nil.
func BuildAdvanced(answers model.Answers) *model.AdvancedAnswers {
	num := func(id string) *float64 {
		if v, ok := answers.Number(id); ok {
			return &v
		}
		return nil
	}
	str := func(id string) *string {
		if v, ok := answers.Text(id); ok {
			return &v
		}
		if v, ok := answers.Choice(id); ok {
			return &v
		}
		return nil
	}

	return &model.AdvancedAnswers{
		MonthlyAdBudget:          num("monthly_ad_budget"),
		MonthlyToolsBudget:       num("monthly_tools_budget"),
		AOV:                      num("aov"),
		ConversionRate:           num("conversion_rate"),
		SalesCycle:               num("sales_cycle"),
		CustomerObjections:       str("customer_objections"),
		USP:                      str("usp"),
		BestPerformingPost:       str("best_performing_post"),
		WorstPerformingContent:   str("worst_performing_content"),
		PrimaryBusinessObjective: str("primary_business_objective"),
		ObjectiveTarget:          num("objective_target"),
		TeamExecutionCapacity:    num("team_execution_capacity"),
		WeeklyHoursCapacity:      num("weekly_hours_capacity"),
		CameraComfort:            num("camera_comfort"),
		WillingToOutsource:       str("willing_to_outsource"),
		TechnicalConstraints:     str("technical_constraints"),
		CurrentFunnel:            str("current_funnel"),
		GrowthLever:              str("growth_lever"),
	}
}
