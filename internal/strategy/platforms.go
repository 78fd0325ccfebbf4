package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/strategy-cli/internal/model"
)

// maxPlatforms caps the recommended platform list.
const maxPlatforms = 4

const (
	platformLinkedIn  = "LinkedIn"
	platformInstagram = "Instagram"
	platformTikTok    = "TikTok"
	platformFacebook  = "Facebook"
	platformYouTube   = "YouTube"
)

// youTubeMinHours is the weekly time capacity needed to sustain YouTube.
const youTubeMinHours = 15

// tikTokComfortHours is the weekly time capacity at which daily TikTok
// posting is considered sustainable.
const tikTokComfortHours = 10

// facts holds the answer-derived predicates the platform rules share.
type facts struct {
	data      *model.QuestionnaireData
	isB2B     bool
	isB2C     bool
	photos    bool
	videos    bool
	voice     string
	tikTokBan bool
}

func newFacts(d *model.QuestionnaireData) facts {
	return facts{
		data:      d,
		isB2B:     d.BusinessType == model.BusinessTypeB2B,
		isB2C:     d.BusinessType == model.BusinessTypeB2C,
		photos:    d.ContentTypes.Contains(model.ContentPhotos),
		videos:    d.ContentTypes.Contains(model.ContentVideos),
		voice:     strings.ToLower(d.BrandVoice),
		tikTokBan: d.Country == model.CountryIndia,
	}
}

// platformRule proposes at most one platform.
type platformRule struct {
	name  string
	apply func(f facts) (model.PlatformRecommendation, bool)
}

// platformRules is evaluated in order. The order matters twice: it decides
// which platforms survive the cap, and it breaks priority ties after sorting.
var platformRules = []platformRule{
	{platformLinkedIn, linkedInRule},
	{platformInstagram, instagramRule},
	{platformTikTok, tikTokRule},
	{platformInstagram, tikTokSubstituteRule},
	{platformFacebook, facebookRule},
	{platformYouTube, youTubeRule},
}

// recommendPlatforms runs the rule list, keeps the first maxPlatforms
// matches and stable-sorts them by priority. A rule that proposes a platform
// already accepted is merged into the existing entry, never appended.
func recommendPlatforms(d *model.QuestionnaireData) []model.PlatformRecommendation {
	f := newFacts(d)

	var accepted []model.PlatformRecommendation
	for _, rule := range platformRules {
		rec, ok := rule.apply(f)
		if !ok {
			continue
		}
		if i := indexOfPlatform(accepted, rec.Name); i >= 0 {
			accepted[i] = mergePlatform(accepted[i], rec)
			continue
		}
		accepted = append(accepted, rec)
	}

	if len(accepted) > maxPlatforms {
		accepted = accepted[:maxPlatforms]
	}
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Priority.Rank() > accepted[j].Priority.Rank()
	})
	return accepted
}

func linkedInRule(f facts) (model.PlatformRecommendation, bool) {
	d := f.data
	leads := d.PrimaryGoals.Contains(model.GoalGenerateLeads)
	if !f.isB2B && !d.PrimaryGoals.Contains(model.GoalThoughtLeadership) && !leads {
		return model.PlatformRecommendation{}, false
	}

	priority := model.PriorityMedium
	opener := "Valuable for professional networking."
	if f.isB2B {
		priority = model.PriorityHigh
		opener = "Essential for B2B companies."
	}

	return model.PlatformRecommendation{
		Name:     platformLinkedIn,
		Priority: priority,
		Reasoning: sentences(
			opener,
			fmt.Sprintf("Your %s brand voice aligns well with LinkedIn's professional environment.", f.voice),
			fmt.Sprintf("With a team of %s, you can maintain consistent thought leadership content.", d.TeamSize),
			when(leads, "Excellent for lead generation in your industry."),
		),
	}, true
}

func instagramRule(f facts) (model.PlatformRecommendation, bool) {
	d := f.data
	visual := f.photos || f.videos
	if !f.isB2C && !visual {
		return model.PlatformRecommendation{}, false
	}

	priority := model.PriorityMedium
	if f.isB2C && visual {
		priority = model.PriorityHigh
	}

	return model.PlatformRecommendation{
		Name:     platformInstagram,
		Priority: priority,
		Reasoning: sentences(
			fmt.Sprintf("Perfect for %s businesses targeting visual-oriented audiences.", d.Industry),
			fmt.Sprintf("Your %s voice translates well to Instagram's visual storytelling format.", f.voice),
			when(f.videos, "Your video creation capability gives you a significant advantage on Reels and Stories."),
			when(d.GeographicFocus == model.GeoLocal, "Instagram's local discovery features will help you reach nearby customers."),
		),
	}, true
}

func tikTokRule(f facts) (model.PlatformRecommendation, bool) {
	d := f.data
	if f.tikTokBan {
		return model.PlatformRecommendation{}, false
	}
	genZ := strings.Contains(strings.ToLower(d.TargetAudience), "gen z")
	if !f.videos && !genZ && d.BrandVoice != model.VoiceFunPlayful {
		return model.PlatformRecommendation{}, false
	}

	cadence := "Consider starting with 3-4 posts per week and scaling up."
	if d.TimeCapacity >= tikTokComfortHours {
		cadence = "With your time capacity, you can maintain the consistent posting TikTok requires."
	}

	rec := model.PlatformRecommendation{
		Name:     platformTikTok,
		Priority: model.PriorityHigh,
		Reasoning: sentences(
			fmt.Sprintf("Your %s brand voice is perfect for TikTok's authentic, engaging format.", f.voice),
			when(f.videos, "Your video creation skills are essential for TikTok success."),
			when(d.Industry == model.IndustryEcommerce, "TikTok has shown exceptional conversion rates for retail businesses."),
			cadence,
		),
	}
	if d.Country == model.CountryUnitedStates {
		rec.CountrySpecific = "Note: TikTok faces potential regulatory challenges in the US. Diversify your short-form video strategy across Instagram Reels and YouTube Shorts."
	}
	return rec, true
}

// tikTokSubstituteRule promotes Instagram Reels where TikTok is unavailable.
// It never fires alongside tikTokRule. When instagramRule already matched,
// the substitution only contributes its priority and country note.
func tikTokSubstituteRule(f facts) (model.PlatformRecommendation, bool) {
	if !f.tikTokBan || !f.videos {
		return model.PlatformRecommendation{}, false
	}
	return model.PlatformRecommendation{
		Name:            platformInstagram,
		Priority:        model.PriorityHigh,
		Reasoning:       "Instagram Reels is your best alternative for short-form video content. Your video creation skills will be highly valuable here. Focus on Reels to capture the TikTok-style content format that performs well on Instagram.",
		CountrySpecific: "TikTok is not available in your region, making Instagram Reels even more important for your video strategy.",
	}, true
}

func facebookRule(f facts) (model.PlatformRecommendation, bool) {
	d := f.data
	local := d.GeographicFocus == model.GeoLocal
	if !local && d.BusinessAge != model.BusinessAgeEstablished && d.BusinessAge != model.BusinessAgeMature {
		return model.PlatformRecommendation{}, false
	}

	opener := "Strong platform for building loyal communities."
	if local {
		opener = "Facebook's local business features and community groups are invaluable for local reach."
	}

	return model.PlatformRecommendation{
		Name:     platformFacebook,
		Priority: model.PriorityMedium,
		Reasoning: sentences(
			opener,
			when(d.PrimaryGoals.Contains(model.GoalCustomerSupport), "Excellent for customer service and community management."),
			when(strings.Contains(strings.ToLower(d.TargetAudience), "adult"), "Aligns with your target demographic's platform preferences."),
		),
	}, true
}

func youTubeRule(f facts) (model.PlatformRecommendation, bool) {
	d := f.data
	if !f.videos || d.TimeCapacity < youTubeMinHours {
		return model.PlatformRecommendation{}, false
	}
	return model.PlatformRecommendation{
		Name:     platformYouTube,
		Priority: model.PriorityMedium,
		Reasoning: sentences(
			fmt.Sprintf("Your video creation capability and %s hours weekly capacity make YouTube viable.", hours(d.TimeCapacity)),
			fmt.Sprintf("Perfect for educational content and building authority in %s.", d.Industry),
			"Long-term SEO benefits and evergreen content potential.",
		),
	}, true
}

func indexOfPlatform(recs []model.PlatformRecommendation, name string) int {
	for i, r := range recs {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// mergePlatform folds a second proposal for the same platform into the
// accepted one. Only a missing country note is taken from the second.
func mergePlatform(kept, extra model.PlatformRecommendation) model.PlatformRecommendation {
	if kept.CountrySpecific == "" {
		kept.CountrySpecific = extra.CountrySpecific
	}
	return kept
}

// sentences joins the non-empty parts with single spaces.
func sentences(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// when returns s if cond holds, else "".
func when(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
