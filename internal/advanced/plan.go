package advanced

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/scoring"
	"github.com/sells-group/strategy-cli/internal/strategy"
)

const (
	planDays  = 30
	planWeeks = 4

	// weeklyTimeShare is the share of weekly capacity budgeted for the plan.
	weeklyTimeShare = 0.8

	// effortImpact is the same for every day until tasks are rated
	// individually.
	effortImpact = 3

	restDay = 6
)

var weekLabels = [planWeeks]string{
	"Foundation & Setup",
	"Execution & Testing",
	"Collaboration & Scaling",
	"Optimization & Review",
}

// dayTitles is indexed by day-of-week, starting from the plan's first day.
var dayTitles = [7]string{
	"Plan & Strategize for the Week",
	"Publish Primary Content",
	"Engage & Nurture Community",
	"Publish Primary Content",
	"Engage & Nurture Community",
	"Analyze & Report on KPIs",
	"Rest & Recharge",
}

func weeklySummaries(r scoring.Resolved, v scoring.Viability) []model.WeeklySummary {
	adSpend := "$0 (Organic Focus)"
	if v.IsViable {
		adSpend = "$" + scoring.FormatAmount(math.Round(r.MonthlyAdBudget/planWeeks))
	}
	hours := scoring.FormatAmount(math.Round(r.WeeklyHoursCapacity * weeklyTimeShare))

	out := make([]model.WeeklySummary, planWeeks)
	for i := range out {
		out[i] = model.WeeklySummary{
			Week:              i + 1,
			Goal:              fmt.Sprintf("Week %d: %s", i+1, weekLabels[i]),
			PriorityKPI:       r.PrimaryBusinessObjective,
			ExpectedMilestone: "Achieve 25% of your 30-day target of " + scoring.FormatAmount(r.ObjectiveTarget),
			EstimatedTime:     hours + " hours",
			AdSpend:           adSpend,
		}
	}
	return out
}

func dailyPlan(d *model.QuestionnaireData, r scoring.Resolved) []model.DailyAction {
	assignee := model.AssigneeSolo
	if r.TeamExecutionCapacity > 1 {
		assignee = model.AssigneeTeam
	}
	hashtags := []string{
		"#" + strategy.StripSpace(d.Industry),
		"#" + strings.ToLower(strategy.StripSpace(d.BusinessName)),
	}

	out := make([]model.DailyAction, planDays)
	for i := range out {
		dow := i % 7
		priority := model.PriorityHigh
		if dow == restDay {
			priority = model.PriorityLow
		}
		out[i] = model.DailyAction{
			Day:           i + 1,
			TaskTitle:     fmt.Sprintf("Day %d - %s", i+1, dayTitles[dow]),
			EstimatedTime: "1-2 hours",
			AssignedTo:    assignee,
			ContentBrief: model.ContentBrief{
				Format:         string(model.TemplateCarousel),
				HookLine:       "Hook based on: " + r.USP,
				PrimaryCaption: "Caption addressing customer objection: " + r.CustomerObjection,
				Hashtags:       append([]string(nil), hashtags...),
				ThumbnailIdea:  "A striking image with a bold text overlay.",
			},
			CTA:               "Click the link in our bio to learn more.",
			MeasurementMetric: "Engagement Rate, Clicks",
			Priority:          priority,
			EffortImpact:      effortImpact,
		}
	}
	return out
}

func contentTemplates(r scoring.Resolved) []model.ContentTemplate {
	return []model.ContentTemplate{
		{
			Title: "Objection-Handling Carousel",
			Type:  model.TemplateCarousel,
			Template: `Slide 1 (Hook): "Is [Objection] stopping you?"
Slide 2: "We hear you. Many feel that way."
Slide 3: "But here's what you might not know..."
Slide 4: "Our solution actually [Benefit that counters objection]."
Slide 5 (CTA): "Ready to see the difference? DM us 'READY'."`,
			Variants: []string{"Start with a question vs. a bold statement."},
		},
		{
			Title: "USP Showcase Reel",
			Type:  model.TemplateReel,
			Template: "(3-second clip showing problem) Text: The old way is broken.\n" +
				"(5-second clip showing your solution) Text: Here's the fix.\n" +
				"(3-second clip of happy customer) Text: " + r.USP,
			Variants: []string{"Use trending audio vs. a voiceover."},
		},
		{
			Title: "Authority Post",
			Type:  model.TemplatePost,
			Template: `Your industry is wrong about [Topic].

Here's the truth: [Your unique perspective].

This is why we focus on [Your method].

What are your thoughts?`,
			Variants: []string{"Ask a question at the start vs. the end."},
		},
	}
}
