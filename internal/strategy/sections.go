package strategy

import (
	"fmt"
	"strings"

	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/scoring"
)

// maxTools caps the tool list.
const maxTools = 3

// paidSchedulerBudget is the monthly budget above which the paid scheduler
// is recommended.
const paidSchedulerBudget = 15

// bootstrapBudgetMax is the exclusive upper bound of the bootstrap budget band.
const bootstrapBudgetMax = 500

const (
	toolBuffer        = "Buffer ($15/month): Best for affordability and straightforward scheduling across multiple platforms."
	toolMetaSuite     = "Meta Business Suite (Free): Native scheduler for Facebook and Instagram. Perfect for starting out."
	toolCanva         = "Canva Pro ($13/month): Essential for creating professional graphics, videos, and brand kits with ease."
	toolCapCut        = "CapCut (Free): Powerful mobile video editor with trending effects and easy-to-use interface."
	budgetOrganicOnly = "Organic Focus: Concentrate 100% of your effort on creating high-quality, engaging content and building a community organically. Your time is your biggest investment."
)

func hours(v float64) string { return scoring.FormatAmount(v) }

func recommendTools(d *model.QuestionnaireData) []string {
	var tools []string
	if d.MonthlyBudget > paidSchedulerBudget || strings.Contains(d.AutomationPreference, "automation") {
		tools = append(tools, toolBuffer)
	} else {
		tools = append(tools, toolMetaSuite)
	}
	videos := d.ContentTypes.Contains(model.ContentVideos)
	if videos || d.ContentTypes.Contains(model.ContentPhotos) {
		tools = append(tools, toolCanva)
	}
	if videos {
		tools = append(tools, toolCapCut)
	}
	if len(tools) > maxTools {
		tools = tools[:maxTools]
	}
	return tools
}

func budgetRecommendation(budget float64) string {
	switch {
	case budget <= 0:
		return budgetOrganicOnly
	case budget < bootstrapBudgetMax:
		return fmt.Sprintf("Bootstrap Growth ($%s/month): Allocate 70%% to content boosting (promoting your best-performing posts to a wider audience) and 30%% to essential tools like Canva Pro.", scoring.FormatAmount(budget))
	default:
		return fmt.Sprintf("Balanced Growth ($%s/month): Allocate 50%% to targeted ads (for lead gen or traffic), 30%% to content boosting, and 20%% to premium tools for analytics and automation.", scoring.FormatAmount(budget))
	}
}

func strategicChanges(d *model.QuestionnaireData) []string {
	if !d.HasCurrentPlatforms() {
		return []string{
			"Since you're starting fresh, focus on setting up just 1-2 of the high-priority platforms first. Don't spread yourself too thin.",
		}
	}
	return []string{
		fmt.Sprintf("Audit your current platforms (%s): Are they aligning with your primary goal of '%s'? If not, consider pausing activity on lower-performing platforms to focus on the recommended ones.",
			strings.Join(d.CurrentPlatforms, ", "), d.PrimaryGoals[0]),
		"Refresh your bio/profile on all active platforms to ensure it clearly states your value proposition and includes a single, clear call-to-action.",
	}
}

func offerRefinements(currentOffers string) []string {
	if strings.TrimSpace(currentOffers) != "" {
		return []string{
			`Add a Clear Call-to-Action (CTA): Ensure every post promoting an offer tells the audience exactly what to do next (e.g., "Click the link in bio," "DM us the word 'STRATEGY'").`,
			`Introduce Urgency or Scarcity: Add elements like "Limited spots available" or "Offer ends Friday" to encourage immediate action.`,
			"Enhance Value with a Bonus: Can you add a small, valuable bonus to your main offer? (e.g., a free checklist, a short video tutorial).",
		}
	}
	return []string{
		`Create a "Tripwire" Offer: Develop a low-cost, high-value introductory offer (e.g., a $7 guide, a $27 mini-workshop) to convert followers into customers more easily.`,
		"Promote a Lead Magnet: Offer a free, valuable resource (like a PDF guide, webinar, or email course) in exchange for an email address to build your list.",
	}
}

func goalFocus(goal string) string {
	if strings.TrimSpace(goal) == "" {
		return "Your strategy is designed for balanced growth across brand awareness and community building. For a more focused plan, consider setting a specific, measurable 30-day goal next time."
	}
	return fmt.Sprintf("Your primary focus for the next 30 days is to **%s**. This strategy is specifically designed to help you achieve that objective through targeted content and platform selection.", goal)
}

func postingSchedule() []model.PostingSchedule {
	return []model.PostingSchedule{{
		Platform:     "Primary Platform",
		Frequency:    "3-5 times/week",
		ContentTypes: []string{"Mix of video, carousels, and single images"},
		BestTimes:    "Varies by platform, check insights",
	}}
}

func contentThemes() []string {
	return []string{"Educational", "Behind-the-Scenes", "Community Building", "Promotional"}
}

func trendingTips() []string {
	return []string{
		`For Reels/TikTok: Check the "Add Audio" section and look for songs with an arrow icon, indicating they are trending. Spend 10 minutes daily scrolling your "For You" page to spot emerging trends.`,
		`For LinkedIn/Twitter: Use the "Explore" or "Trending" tabs to see what topics are currently being discussed in your industry. Participate in relevant conversations.`,
		"Set up Google Alerts for keywords related to your industry to stay on top of news and create timely content.",
	}
}

func hashtagStrategy() []string {
	return []string{
		"Use a mix of 5-10 hashtags per post: 2-3 broad industry tags (e.g., #DigitalMarketing), 3-4 niche-specific tags (e.g., #SmallBizSEO), and 2-3 branded or campaign-specific tags (e.g., #AmazStrategy).",
		"Create and save hashtag groups for different content themes to save time.",
		"Don't use the same block of hashtags on every post. Tailor them to the specific content.",
	}
}

func nextSteps() []string {
	return []string{
		"Define your content pillars based on the themes.",
		"Create a content calendar for the first month.",
		"Set up your recommended tools.",
		"Review analytics weekly.",
	}
}
