// Package strategy derives the basic-tier social media strategy from a
// complete questionnaire. Generate is a pure function of its input.
package strategy

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/strategy-cli/internal/model"
)

// Generate builds the basic strategy document. It fails fast with a
// *model.FieldError when a required answer is missing.
func Generate(data model.QuestionnaireData) (*model.StrategyResult, error) {
	if err := data.Validate(); err != nil {
		return nil, eris.Wrap(err, "strategy: invalid questionnaire")
	}
	d := &data

	return &model.StrategyResult{
		Name:                 d.Name,
		BusinessName:         d.BusinessName,
		Country:              d.Country,
		MonthlyBudget:        d.MonthlyBudget,
		Platforms:            recommendPlatforms(d),
		ThirtyDayGoalFocus:   goalFocus(d.ThirtyDayGoal),
		PostingSchedule:      postingSchedule(),
		ContentThemes:        contentThemes(),
		WeeklyContentIdeas:   thisWeekCalendar(d.Industry),
		NextWeekContentIdeas: nextWeekCalendar(d.Industry),
		Tools:                recommendTools(d),
		BudgetRecommendation: budgetRecommendation(d.MonthlyBudget),
		OfferRefinements:     offerRefinements(d.CurrentOffers),
		StrategicChanges:     strategicChanges(d),
		TrendingTips:         trendingTips(),
		HashtagStrategy:      hashtagStrategy(),
		NextSteps:            nextSteps(),
	}, nil
}
