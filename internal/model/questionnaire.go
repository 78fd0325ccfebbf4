package model

// Option values the strategy rules branch on. The full option sets live in
// the questionnaire catalog.
const (
	BusinessTypeB2B = "B2B (Business to Business)"
	BusinessTypeB2C = "B2C (Business to Consumer)"

	BusinessAgeEstablished = "Established (2-5 years)"
	BusinessAgeMature      = "Mature (5+ years)"

	GoalThoughtLeadership = "Thought leadership"
	GoalGenerateLeads     = "Generate leads"
	GoalCustomerSupport   = "Customer support"

	ContentPhotos = "Photos"
	ContentVideos = "Videos"

	VoiceFunPlayful = "Fun & Playful"

	GeoLocal = "Local/City-specific"

	CountryIndia        = "India"
	CountryUnitedStates = "United States"

	IndustryEcommerce = "E-commerce & Retail"

	PlatformNone   = "None currently"
	PlatformTikTok = "TikTok"

	OutsourceYes = "yes"
	OutsourceNo  = "no"
)

// Lead holds the identity captured before the questionnaire starts.
type Lead struct {
	Name            string `json:"name" yaml:"name"`
	Email           string `json:"email" yaml:"email"`
	BusinessName    string `json:"business_name" yaml:"business_name"`
	WebsiteOrSocial string `json:"website_or_social,omitempty" yaml:"website_or_social"`
}

// QuestionnaireData is a complete, validated basic-tier answer set.
type QuestionnaireData struct {
	Lead

	Country                 string      `json:"country"`
	Industry                string      `json:"industry"`
	BusinessType            string      `json:"business_type"`
	TargetAudience          string      `json:"target_audience"`
	BusinessAge             string      `json:"business_age"`
	TeamSize                string      `json:"team_size"`
	MonthlyBudget           float64     `json:"monthly_budget"`
	TimeCapacity            float64     `json:"time_capacity"`
	PrimaryGoals            MultiChoice `json:"primary_goals"`
	ThirtyDayGoal           string      `json:"thirty_day_goal"`
	CurrentPlatforms        MultiChoice `json:"current_platforms"`
	ContentTypes            MultiChoice `json:"content_types"`
	BrandVoice              string      `json:"brand_voice"`
	CurrentOffers           string      `json:"current_offers"`
	CompetitorAnalysis      string      `json:"competitor_analysis"`
	PreviousExperience      string      `json:"previous_experience"`
	ContentCreationCapacity string      `json:"content_creation_capacity"`
	AutomationPreference    string      `json:"automation_preference"`
	MeasurableGoals         string      `json:"measurable_goals"`
	Seasonality             string      `json:"seasonality"`
	GeographicFocus         string      `json:"geographic_focus"`
	BrandStage              string      `json:"brand_stage"`
	Challenges              string      `json:"challenges"`
}

// Validate checks that every required field is present. Option-set
// membership is the questionnaire layer's job and is not re-checked here.
func (q *QuestionnaireData) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", q.Name},
		{"email", q.Email},
		{"business_name", q.BusinessName},
		{"country", q.Country},
		{"industry", q.Industry},
		{"business_type", q.BusinessType},
		{"business_age", q.BusinessAge},
		{"team_size", q.TeamSize},
		{"brand_voice", q.BrandVoice},
		{"competitor_analysis", q.CompetitorAnalysis},
		{"previous_experience", q.PreviousExperience},
		{"content_creation_capacity", q.ContentCreationCapacity},
		{"automation_preference", q.AutomationPreference},
		{"measurable_goals", q.MeasurableGoals},
		{"seasonality", q.Seasonality},
		{"geographic_focus", q.GeographicFocus},
		{"brand_stage", q.BrandStage},
	}
	for _, r := range required {
		if r.value == "" {
			return NewFieldError(r.field, FieldMissing)
		}
	}
	if len(q.PrimaryGoals) == 0 {
		return NewFieldError("primary_goals", FieldMissing)
	}
	if q.MonthlyBudget < 0 {
		return NewFieldError("monthly_budget", FieldOutOfRange)
	}
	if q.TimeCapacity <= 0 {
		return NewFieldError("time_capacity", FieldOutOfRange)
	}
	return nil
}

// HasCurrentPlatforms reports whether the business already runs any social
// accounts.
func (q *QuestionnaireData) HasCurrentPlatforms() bool {
	return len(q.CurrentPlatforms) > 0 && q.CurrentPlatforms[0] != PlatformNone
}

// AdvancedAnswers is a partial advanced-tier answer set. A nil field was not
// supplied; defaults are applied by the scoring layer, never here.
type AdvancedAnswers struct {
	MonthlyAdBudget          *float64 `json:"monthly_ad_budget,omitempty"`
	MonthlyToolsBudget       *float64 `json:"monthly_tools_budget,omitempty"`
	AOV                      *float64 `json:"aov,omitempty"`
	ConversionRate           *float64 `json:"conversion_rate,omitempty"`
	SalesCycle               *float64 `json:"sales_cycle,omitempty"`
	CustomerObjections       *string  `json:"customer_objections,omitempty"`
	USP                      *string  `json:"usp,omitempty"`
	BestPerformingPost       *string  `json:"best_performing_post,omitempty"`
	WorstPerformingContent   *string  `json:"worst_performing_content,omitempty"`
	PrimaryBusinessObjective *string  `json:"primary_business_objective,omitempty"`
	ObjectiveTarget          *float64 `json:"objective_target,omitempty"`
	TeamExecutionCapacity    *float64 `json:"team_execution_capacity,omitempty"`
	WeeklyHoursCapacity      *float64 `json:"weekly_hours_capacity,omitempty"`
	CameraComfort            *float64 `json:"camera_comfort,omitempty"`
	WillingToOutsource       *string  `json:"willing_to_outsource,omitempty"`
	TechnicalConstraints     *string  `json:"technical_constraints,omitempty"`
	CurrentFunnel            *string  `json:"current_funnel,omitempty"`
	GrowthLever              *string  `json:"growth_lever,omitempty"`
}

// Supplied returns how many advanced fields were answered.
func (a *AdvancedAnswers) Supplied() int {
	if a == nil {
		return 0
	}
	n := 0
	for _, f := range []*float64{
		a.MonthlyAdBudget, a.MonthlyToolsBudget, a.AOV, a.ConversionRate, a.SalesCycle,
		a.ObjectiveTarget, a.TeamExecutionCapacity, a.WeeklyHoursCapacity, a.CameraComfort,
	} {
		if f != nil {
			n++
		}
	}
	for _, s := range []*string{
		a.CustomerObjections, a.USP, a.BestPerformingPost, a.WorstPerformingContent,
		a.PrimaryBusinessObjective, a.WillingToOutsource, a.TechnicalConstraints,
		a.CurrentFunnel, a.GrowthLever,
	} {
		if s != nil {
			n++
		}
	}
	return n
}

// Float returns a pointer to v. It keeps AdvancedAnswers literals short.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
