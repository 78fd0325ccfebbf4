package model

// Priority ranks a recommended platform.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// priorityRank maps priorities to numeric ranks for sorting.
// Higher rank sorts first.
var priorityRank = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Rank returns the sort rank of p; unknown priorities rank 0.
func (p Priority) Rank() int {
	return priorityRank[p]
}

// PlatformRecommendation is one platform the business should invest in.
type PlatformRecommendation struct {
	Name            string   `json:"name"`
	Priority        Priority `json:"priority"`
	Reasoning       string   `json:"reasoning"`
	CountrySpecific string   `json:"country_specific,omitempty"`
}

// PostingSchedule describes cadence for a platform.
type PostingSchedule struct {
	Platform     string   `json:"platform"`
	Frequency    string   `json:"frequency"`
	ContentTypes []string `json:"content_types"`
	BestTimes    string   `json:"best_times,omitempty"`
	ContentRatio string   `json:"content_ratio,omitempty"`
}

// ContentIdea is one day of a content calendar.
type ContentIdea struct {
	Day         string   `json:"day"`
	ContentType string   `json:"content_type"`
	Idea        string   `json:"idea"`
	Hashtags    []string `json:"hashtags"`
	Tips        string   `json:"tips"`
}

// StrategyResult is the basic-tier strategy document.
type StrategyResult struct {
	Name                 string                   `json:"name"`
	BusinessName         string                   `json:"business_name"`
	Country              string                   `json:"country"`
	MonthlyBudget        float64                  `json:"monthly_budget"`
	Platforms            []PlatformRecommendation `json:"platforms"`
	ThirtyDayGoalFocus   string                   `json:"thirty_day_goal_focus"`
	PostingSchedule      []PostingSchedule        `json:"posting_schedule"`
	ContentThemes        []string                 `json:"content_themes"`
	WeeklyContentIdeas   []ContentIdea            `json:"weekly_content_ideas"`
	NextWeekContentIdeas []ContentIdea            `json:"next_week_content_ideas"`
	Tools                []string                 `json:"tools"`
	BudgetRecommendation string                   `json:"budget_recommendation"`
	OfferRefinements     []string                 `json:"offer_refinements"`
	StrategicChanges     []string                 `json:"strategic_changes"`
	TrendingTips         []string                 `json:"trending_tips"`
	HashtagStrategy      []string                 `json:"hashtag_strategy"`
	NextSteps            []string                 `json:"next_steps"`
}

// HasPlatform reports whether name is among the recommended platforms.
func (s *StrategyResult) HasPlatform(name string) bool {
	for _, p := range s.Platforms {
		if p.Name == name {
			return true
		}
	}
	return false
}
