package advanced

import (
	"fmt"
	"math"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/scoring"
)

func adPlan(r scoring.Resolved, v scoring.Viability, cfg config.ScoringConfig) model.AdPlan {
	plan := model.AdPlan{
		IsViable:           v.IsViable,
		ViabilityReasoning: v.Reasoning,
		BudgetBand:         scoring.BudgetBand(r.MonthlyAdBudget, cfg),
		WeeklyObjectives: []string{
			"Week 1: Awareness (Video Views)",
			"Week 2: Retargeting (Traffic)",
			"Week 3: Conversion (Leads/Sales)",
			"Week 4: Scale Winners",
		},
		RecommendedCreatives: []string{
			"Video ad based on best-performing post",
			"Carousel ad showcasing testimonials",
		},
		KPITargets: "N/A",
	}
	if v.IsViable {
		plan.DailyBudget = math.Round(r.MonthlyAdBudget / planDays)
		plan.KPITargets = fmt.Sprintf("Target CPA: <$%s, Target ROAS: >%.1fx", scoring.FormatAmount(v.MaxCPA), v.TargetROAS)
	}
	return plan
}

func repurposingMatrix() model.RepurposingMatrix {
	return model.RepurposingMatrix{
		CoreAsset: "1x Long-Form Video (e.g., YouTube)",
		RepurposedPosts: []model.RepurposedPost{
			{Platform: "Instagram", Format: "Reel", Idea: "Clip the best 30-second hook."},
			{Platform: "LinkedIn", Format: "Text Post", Idea: "Transcribe the key takeaways."},
			{Platform: "Twitter/X", Format: "Thread", Idea: "Break down the video into a 5-tweet thread."},
			{Platform: "Instagram", Format: "Carousel", Idea: "Create a 5-slide carousel from the main points."},
		},
	}
}

func onboardingChecklist() []model.ToolRecommendation {
	return []model.ToolRecommendation{
		{Tool: "Canva", Purpose: "Graphic and video design", SetupTime: "30 mins"},
		{Tool: "Buffer / Later", Purpose: "Content scheduling", SetupTime: "1 hour"},
		{Tool: "Google Analytics", Purpose: "Website traffic analysis", SetupTime: "30 mins"},
	}
}

func measurementDashboard(r scoring.Resolved) []model.KPIDashboardItem {
	return []model.KPIDashboardItem{
		{
			KPI:               "Engagement Rate",
			Formula:           "(Likes + Comments + Shares) / Followers * 100",
			CorrectiveActions: []string{"Test new hooks", "Ask more questions", "Engage with other accounts"},
		},
		{
			KPI:               "Click-Through Rate (CTR)",
			Formula:           "(Link Clicks / Impressions) * 100",
			CorrectiveActions: []string{"Make CTA clearer", "Put link in bio", "Use stronger visuals"},
		},
		{
			KPI:               "Cost Per " + r.ObjectiveKPILabel,
			Formula:           "Total Ad Spend / Number of Results",
			CorrectiveActions: []string{"Refine ad targeting", "Improve ad creative", "Adjust landing page"},
		},
	}
}
