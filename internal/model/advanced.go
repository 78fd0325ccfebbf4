package model

// BudgetBand is a coarse label for monthly ad spend.
type BudgetBand string

const (
	BandMicro  BudgetBand = "Micro"
	BandSmall  BudgetBand = "Small"
	BandMedium BudgetBand = "Medium"
	BandGrowth BudgetBand = "Growth"
)

// Assignee is who executes a daily action.
type Assignee string

const (
	AssigneeSolo       Assignee = "Solo"
	AssigneeFreelancer Assignee = "Freelancer"
	AssigneeTeam       Assignee = "Team"
)

// TemplateType is the post format of a content template.
type TemplateType string

const (
	TemplateCarousel TemplateType = "Carousel"
	TemplateReel     TemplateType = "Reel"
	TemplatePost     TemplateType = "Post"
)

// WeeklySummary frames one week of the 30-day plan.
type WeeklySummary struct {
	Week              int    `json:"week"`
	Goal              string `json:"goal"`
	PriorityKPI       string `json:"priority_kpi"`
	ExpectedMilestone string `json:"expected_milestone"`
	EstimatedTime     string `json:"estimated_time"`
	AdSpend           string `json:"ad_spend"`
}

// ContentBrief describes the post produced on a given day.
type ContentBrief struct {
	Format         string   `json:"format"`
	HookLine       string   `json:"hook_line"`
	PrimaryCaption string   `json:"primary_caption"`
	Hashtags       []string `json:"hashtags"`
	ThumbnailIdea  string   `json:"thumbnail_idea"`
}

// DailyAction is one day of the 30-day plan.
type DailyAction struct {
	Day               int          `json:"day"`
	TaskTitle         string       `json:"task_title"`
	EstimatedTime     string       `json:"estimated_time"`
	AssignedTo        Assignee     `json:"assigned_to"`
	ContentBrief      ContentBrief `json:"content_brief"`
	CTA               string       `json:"cta"`
	MeasurementMetric string       `json:"measurement_metric"`
	Priority          Priority     `json:"priority"`
	EffortImpact      int          `json:"effort_impact_ratio"`
}

// ContentTemplate is a reusable post skeleton.
type ContentTemplate struct {
	Title    string       `json:"title"`
	Type     TemplateType `json:"type"`
	Template string       `json:"template"`
	Variants []string     `json:"variants"`
}

// AdPlan is the paid-traffic section of the advanced strategy.
type AdPlan struct {
	IsViable             bool       `json:"is_viable"`
	ViabilityReasoning   string     `json:"viability_reasoning"`
	BudgetBand           BudgetBand `json:"budget_band"`
	DailyBudget          float64    `json:"daily_budget"`
	WeeklyObjectives     []string   `json:"weekly_objectives"`
	RecommendedCreatives []string   `json:"recommended_creatives"`
	KPITargets           string     `json:"kpi_targets"`
}

// RepurposedPost is one derivative of a core asset.
type RepurposedPost struct {
	Platform string `json:"platform"`
	Format   string `json:"format"`
	Idea     string `json:"idea"`
}

// RepurposingMatrix turns one core asset into several posts.
type RepurposingMatrix struct {
	CoreAsset       string           `json:"core_asset"`
	RepurposedPosts []RepurposedPost `json:"repurposed_posts"`
}

// ToolRecommendation is one onboarding checklist entry.
type ToolRecommendation struct {
	Tool      string `json:"tool"`
	Purpose   string `json:"purpose"`
	SetupTime string `json:"setup_time"`
}

// KPIDashboardItem is one row of the measurement dashboard.
type KPIDashboardItem struct {
	KPI               string   `json:"kpi"`
	Formula           string   `json:"formula"`
	CorrectiveActions []string `json:"corrective_actions"`
}

// AdvancedStrategyResult is the advanced-tier 30-day action plan.
type AdvancedStrategyResult struct {
	Name                 string               `json:"name"`
	BusinessName         string               `json:"business_name"`
	WasEstimated         bool                 `json:"was_estimated"`
	WeeklySummaries      []WeeklySummary      `json:"weekly_summaries"`
	DailyPlan            []DailyAction        `json:"daily_plan"`
	ContentTemplates     []ContentTemplate    `json:"content_templates"`
	AdPlan               AdPlan               `json:"ad_plan"`
	RepurposingMatrix    RepurposingMatrix    `json:"repurposing_matrix"`
	OnboardingChecklist  []ToolRecommendation `json:"onboarding_checklist"`
	MeasurementDashboard []KPIDashboardItem   `json:"measurement_dashboard"`
	CapacityScore        int                  `json:"capacity_score"`
	ROASTarget           float64              `json:"roas_target"`
}
