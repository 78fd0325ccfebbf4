// Package render turns strategy results into documents. Renderers are
// read-only consumers of the engine output and contain no business logic.
package render

import (
	"fmt"
	"strings"

	"github.com/sells-group/strategy-cli/internal/currency"
	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/scoring"
)

// Markdown renders the basic strategy as a GitHub-flavored Markdown document.
func Markdown(r *model.StrategyResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Social Media Strategy for %s\n\n", r.BusinessName)
	fmt.Fprintf(&b, "Prepared for %s. Monthly budget: %s.\n\n", r.Name, currency.Format(r.MonthlyBudget, r.Country))

	section(&b, "Your 30-Day Focus")
	b.WriteString(r.ThirtyDayGoalFocus + "\n\n")

	section(&b, "Recommended Platforms")
	if len(r.Platforms) == 0 {
		b.WriteString("No platform stood out from your answers. Start with the one your audience already uses most.\n\n")
	}
	for i, p := range r.Platforms {
		fmt.Fprintf(&b, "### %d. %s (%s priority)\n\n%s\n\n", i+1, p.Name, p.Priority, p.Reasoning)
		if p.CountrySpecific != "" {
			fmt.Fprintf(&b, "> %s\n\n", p.CountrySpecific)
		}
	}

	section(&b, "Posting Schedule")
	rows := make([][]string, 0, len(r.PostingSchedule))
	for _, s := range r.PostingSchedule {
		rows = append(rows, []string{s.Platform, s.Frequency, strings.Join(s.ContentTypes, ", "), s.BestTimes})
	}
	table(&b, []string{"Platform", "Frequency", "Content", "Best Times"}, rows)

	section(&b, "Content Themes")
	bullets(&b, r.ContentThemes)

	section(&b, "This Week's Content Calendar")
	calendar(&b, r.WeeklyContentIdeas)

	section(&b, "Next Week's Content Calendar")
	calendar(&b, r.NextWeekContentIdeas)

	section(&b, "Recommended Tools")
	bullets(&b, r.Tools)

	section(&b, "Budget Recommendation")
	b.WriteString(r.BudgetRecommendation + "\n\n")

	section(&b, "Offer Refinements")
	bullets(&b, r.OfferRefinements)

	section(&b, "Strategic Changes")
	bullets(&b, r.StrategicChanges)

	section(&b, "Trending Content Tips")
	bullets(&b, r.TrendingTips)

	section(&b, "Hashtag Strategy")
	bullets(&b, r.HashtagStrategy)

	section(&b, "Next Steps")
	for i, s := range r.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}

	return b.String()
}

// AdvancedMarkdown renders the advanced 30-day plan.
func AdvancedMarkdown(r *model.AdvancedStrategyResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# 30-Day Action Plan for %s\n\n", r.BusinessName)
	fmt.Fprintf(&b, "Prepared for %s.\n\n", r.Name)
	if r.WasEstimated {
		b.WriteString("> Some advanced answers were missing, so parts of this plan are based on estimates.\n\n")
	}

	section(&b, "At a Glance")
	bullets(&b, []string{
		fmt.Sprintf("Capacity score: %d/100", r.CapacityScore),
		fmt.Sprintf("Ad budget band: %s", r.AdPlan.BudgetBand),
		"Target ROAS: " + roas(r.ROASTarget),
	})

	section(&b, "Weekly Summaries")
	rows := make([][]string, 0, len(r.WeeklySummaries))
	for _, w := range r.WeeklySummaries {
		rows = append(rows, []string{w.Goal, w.PriorityKPI, w.ExpectedMilestone, w.EstimatedTime, w.AdSpend})
	}
	table(&b, []string{"Week", "Priority KPI", "Milestone", "Time", "Ad Spend"}, rows)

	section(&b, "Daily Plan")
	rows = make([][]string, 0, len(r.DailyPlan))
	for _, a := range r.DailyPlan {
		rows = append(rows, []string{
			a.TaskTitle, a.EstimatedTime, string(a.AssignedTo), string(a.Priority),
			a.ContentBrief.HookLine, a.CTA, a.MeasurementMetric,
		})
	}
	table(&b, []string{"Task", "Time", "Owner", "Priority", "Hook", "CTA", "Metric"}, rows)

	section(&b, "Content Templates")
	for _, t := range r.ContentTemplates {
		fmt.Fprintf(&b, "### %s (%s)\n\n```text\n%s\n```\n\n", t.Title, t.Type, t.Template)
		for _, v := range t.Variants {
			fmt.Fprintf(&b, "A/B test: %s\n\n", v)
		}
	}

	section(&b, "Ad Plan")
	verdict := "Not recommended yet"
	if r.AdPlan.IsViable {
		verdict = "Viable"
	}
	fmt.Fprintf(&b, "**%s.** %s\n\n", verdict, r.AdPlan.ViabilityReasoning)
	bullets(&b, []string{
		fmt.Sprintf("Budget band: %s", r.AdPlan.BudgetBand),
		"Daily budget: $" + scoring.FormatAmount(r.AdPlan.DailyBudget),
		"KPI targets: " + r.AdPlan.KPITargets,
	})
	b.WriteString("Weekly objectives:\n\n")
	bullets(&b, r.AdPlan.WeeklyObjectives)
	b.WriteString("Recommended creatives:\n\n")
	bullets(&b, r.AdPlan.RecommendedCreatives)

	section(&b, "Repurposing Matrix")
	fmt.Fprintf(&b, "Core asset: %s\n\n", r.RepurposingMatrix.CoreAsset)
	rows = make([][]string, 0, len(r.RepurposingMatrix.RepurposedPosts))
	for _, p := range r.RepurposingMatrix.RepurposedPosts {
		rows = append(rows, []string{p.Platform, p.Format, p.Idea})
	}
	table(&b, []string{"Platform", "Format", "Idea"}, rows)

	section(&b, "Onboarding Checklist")
	rows = make([][]string, 0, len(r.OnboardingChecklist))
	for _, t := range r.OnboardingChecklist {
		rows = append(rows, []string{t.Tool, t.Purpose, t.SetupTime})
	}
	table(&b, []string{"Tool", "Purpose", "Setup Time"}, rows)

	section(&b, "Measurement Dashboard")
	rows = make([][]string, 0, len(r.MeasurementDashboard))
	for _, k := range r.MeasurementDashboard {
		rows = append(rows, []string{k.KPI, k.Formula, strings.Join(k.CorrectiveActions, "; ")})
	}
	table(&b, []string{"KPI", "Formula", "Corrective Actions"}, rows)

	return b.String()
}

func roas(v float64) string {
	if v <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1fx", v)
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "## %s\n\n", title)
}

func bullets(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

func calendar(b *strings.Builder, ideas []model.ContentIdea) {
	rows := make([][]string, 0, len(ideas))
	for _, c := range ideas {
		rows = append(rows, []string{c.Day, c.ContentType, c.Idea, strings.Join(c.Hashtags, " "), c.Tips})
	}
	table(b, []string{"Day", "Content Type", "Idea", "Hashtags", "Tip"}, rows)
}

func table(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escapeCell(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", "<br>")

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
