package strategy

import (
	"strings"
	"unicode"

	"github.com/sells-group/strategy-cli/internal/model"
)

// thisWeekCalendar is the first content week. Only the Monday hashtag
// depends on the answers.
func thisWeekCalendar(industry string) []model.ContentIdea {
	tag := industryTag(industry)
	return []model.ContentIdea{
		{
			Day: "Monday", ContentType: "Educational Post",
			Idea:     "Bust a common myth in your industry with a quick-tip carousel.",
			Hashtags: []string{"#MythBustingMonday", "#" + tag + "Tips"},
			Tips:     "Use bold text and simple graphics to make it easily digestible.",
		},
		{
			Day: "Tuesday", ContentType: "Video (Reel/Short)",
			Idea:     `Show a "behind-the-scenes" look at your workspace or product creation process.`,
			Hashtags: []string{"#BehindTheScenes", "#DayInTheLife"},
			Tips:     "Use trending audio to increase reach, but make sure it fits your brand voice.",
		},
		{
			Day: "Wednesday", ContentType: "Engagement Post",
			Idea:     `Ask a "This or That" question related to your audience's interests.`,
			Hashtags: []string{"#ThisOrThat", "#CommunityPoll"},
			Tips:     "Create a simple graphic with two clear choices. Respond to every comment to boost engagement.",
		},
		{
			Day: "Thursday", ContentType: "Testimonial/UGC",
			Idea:     "Share a positive customer review or user-generated content. Tag the user!",
			Hashtags: []string{"#CustomerLove", "#HappyClient"},
			Tips:     "Create a branded template for testimonials to maintain a consistent look.",
		},
		{
			Day: "Friday", ContentType: "Value-Driven Post",
			Idea:     "Share a quick tip or resource that solves a small problem for your audience.",
			Hashtags: []string{"#FridayFeeling", "#QuickTip"},
			Tips:     "Link to a more in-depth blog post or resource on your website to drive traffic.",
		},
		{
			Day: "Saturday", ContentType: "Personal Story",
			Idea:     "Share a story about a challenge you overcame in your business journey.",
			Hashtags: []string{"#FounderStory", "#EntrepreneurLife"},
			Tips:     "Be authentic and vulnerable. People connect with stories, not just products.",
		},
		{
			Day: "Sunday", ContentType: "Weekly Roundup/Preview",
			Idea:     "Recap the week's highlights and give a sneak peek of what's coming next week.",
			Hashtags: []string{"#WeeklyWrapUp", "#ComingSoon"},
			Tips:     "Use this to build anticipation and encourage followers to tune in.",
		},
	}
}

// nextWeekCalendar is the second content week.
func nextWeekCalendar(industry string) []model.ContentIdea {
	tag := industryTag(industry)
	return []model.ContentIdea{
		{
			Day: "Monday", ContentType: "Industry News/Trend",
			Idea:     "React to a trending topic in your industry with your expert perspective.",
			Hashtags: []string{"#TrendingNow", "#" + tag + "News"},
			Tips:     "Add your unique take on industry news to position yourself as a thought leader.",
		},
		{
			Day: "Tuesday", ContentType: "Tutorial Video",
			Idea:     "Create a step-by-step tutorial solving a common problem your audience faces.",
			Hashtags: []string{"#TutorialTuesday", "#HowTo"},
			Tips:     "Keep it under 60 seconds for maximum engagement. Save longer tutorials for YouTube.",
		},
		{
			Day: "Wednesday", ContentType: "Q&A Session",
			Idea:     "Answer frequently asked questions from your community or DMs.",
			Hashtags: []string{"#QandA", "#AskMeAnything"},
			Tips:     "Use question stickers in Stories to collect questions beforehand.",
		},
		{
			Day: "Thursday", ContentType: "Before/After",
			Idea:     "Show transformation results, project evolution, or process improvements.",
			Hashtags: []string{"#Transformation", "#BeforeAndAfter"},
			Tips:     "Visual proof of results is powerful social proof for your expertise.",
		},
		{
			Day: "Friday", ContentType: "Fun/Light Content",
			Idea:     "Share a funny meme, office pet, or team celebration related to your brand.",
			Hashtags: []string{"#FridayFun", "#TeamLife"},
			Tips:     "Humanize your brand with lighter content that still aligns with your voice.",
		},
		{
			Day: "Saturday", ContentType: "Client Spotlight",
			Idea:     "Feature a client success story or collaborative project in detail.",
			Hashtags: []string{"#ClientSpotlight", "#SuccessStory"},
			Tips:     "Get permission first and tag the client for mutual benefit and reach.",
		},
		{
			Day: "Sunday", ContentType: "Goal Setting/Planning",
			Idea:     "Share your goals for the upcoming week and ask followers about theirs.",
			Hashtags: []string{"#GoalSetting", "#WeeklyPlanning"},
			Tips:     "Create accountability and community by encouraging interaction around shared goals.",
		},
	}
}

// industryTag strips whitespace so an industry label can prefix a hashtag.
func industryTag(industry string) string {
	return StripSpace(industry)
}

// StripSpace removes every whitespace rune from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
