// Package questionnaire owns the question catalogs and turns loosely typed
// form answers into validated engine inputs.
package questionnaire

import "github.com/sells-group/strategy-cli/internal/model"

func bound(v float64) *float64 { return &v }

// basicQuestions lists the basic-tier questions in form order.
func basicQuestions() []model.Question {
	return []model.Question{
		{
			ID:    "country",
			Title: "Which country is your business primarily based in?",
			Kind:  model.KindChoice,
			Options: []string{
				"United States", "United Kingdom", "Canada", "Australia", "Germany", "France",
				"Netherlands", "India", "Singapore", "United Arab Emirates", "South Africa",
				"Brazil", "Mexico", "Other",
			},
			Required: true,
		},
		{
			ID:    "industry",
			Title: "What industry is your business in?",
			Kind:  model.KindChoice,
			Options: []string{
				"Technology & Software", "E-commerce & Retail", "Health & Wellness", "Food & Beverage",
				"Professional Services", "Education & Training", "Real Estate", "Finance & Insurance",
				"Creative & Design", "Other",
			},
			Required: true,
		},
		{
			ID:    "business_type",
			Title: "What type of business model do you have?",
			Kind:  model.KindChoice,
			Options: []string{
				model.BusinessTypeB2B, model.BusinessTypeB2C, "Both B2B and B2C",
				"Non-profit Organization", "Personal Brand/Influencer",
			},
			Required: true,
		},
		{
			ID:          "target_audience",
			Title:       "Describe your primary target audience in detail",
			Kind:        model.KindText,
			Placeholder: "e.g., Small business owners aged 25-45, tech-savvy entrepreneurs who value efficiency and are active on LinkedIn and Instagram...",
			Disclaimer:  "The more specific and detailed your answer, the better we can tailor your strategy!",
		},
		{
			ID:    "business_age",
			Title: "How long has your business been operating?",
			Kind:  model.KindChoice,
			Options: []string{
				"Just starting (0-6 months)", "New business (6 months - 2 years)",
				model.BusinessAgeEstablished, model.BusinessAgeMature,
			},
			Required: true,
		},
		{
			ID:       "team_size",
			Title:    "How many people work on marketing/social media?",
			Kind:     model.KindChoice,
			Options:  []string{"Just me (solo)", "2-3 people", "4-10 people", "10+ people", "Outsourced team"},
			Required: true,
		},
		{
			ID:       "monthly_budget",
			Title:    "What's your monthly social media marketing budget?",
			Kind:     model.KindNumber,
			Min:      bound(0),
			Max:      bound(10000),
			Step:     50,
			Unit:     "USD",
			Required: true,
		},
		{
			ID:       "time_capacity",
			Title:    "How many hours per week can you dedicate to social media?",
			Kind:     model.KindNumber,
			Min:      bound(1),
			Max:      bound(40),
			Step:     1,
			Unit:     "hours",
			Required: true,
		},
		{
			ID:    "primary_goals",
			Title: "What are your main social media goals? (Select all that apply)",
			Kind:  model.KindMultiChoice,
			Options: []string{
				"Increase brand awareness", model.GoalGenerateLeads, "Drive website traffic", "Build community",
				model.GoalCustomerSupport, "Sales conversion", model.GoalThoughtLeadership, "Recruitment",
			},
			Required: true,
		},
		{
			ID:          "thirty_day_goal",
			Title:       "What is your most important, specific goal for the next 30 days?",
			Kind:        model.KindText,
			Placeholder: "e.g., Get 5 new clients, increase website traffic by 20%, book 10 discovery calls, sell 50 units of a product...",
			Disclaimer:  "A specific, measurable goal helps us create a highly focused action plan for you.",
		},
		{
			ID:    "current_platforms",
			Title: "Which platforms do you currently use? (Select all that apply)",
			Kind:  model.KindMultiChoice,
			Options: []string{
				"Instagram", "Facebook", "LinkedIn", model.PlatformTikTok, "Twitter/X", "YouTube",
				"Pinterest", "Snapchat", model.PlatformNone,
			},
		},
		{
			ID:    "content_types",
			Title: "What content types are you comfortable creating? (Select all that apply)",
			Kind:  model.KindMultiChoice,
			Options: []string{
				model.ContentPhotos, model.ContentVideos, "Written posts", "Infographics", "Stories",
				"Live streams", "Podcasts", "User-generated content",
			},
		},
		{
			ID:    "brand_voice",
			Title: "How would you describe your brand voice?",
			Kind:  model.KindChoice,
			Options: []string{
				"Professional & Authoritative", "Friendly & Approachable", model.VoiceFunPlayful,
				"Inspirational & Motivational", "Educational & Informative", "Luxury & Sophisticated",
			},
			Required: true,
		},
		{
			ID:          "current_offers",
			Title:       "Describe your current offers and how you promote them.",
			Kind:        model.KindText,
			Placeholder: "e.g., We offer a free 30-minute consultation promoted via Instagram posts. Our main product is a $99 online course, which we mention in our weekly newsletter.",
			Disclaimer:  "This helps us suggest refinements to make your offers more compelling on social media.",
		},
		{
			ID:    "competitor_analysis",
			Title: "How active are your competitors on social media?",
			Kind:  model.KindChoice,
			Options: []string{
				"Very active with strong presence", "Moderately active", "Limited presence",
				"Not sure", "No direct competitors on social media",
			},
			Required: true,
		},
		{
			ID:    "previous_experience",
			Title: "What's your experience level with social media marketing?",
			Kind:  model.KindChoice,
			Options: []string{
				"Complete beginner", "Some basic knowledge", "Intermediate experience", "Advanced user", "Expert level",
			},
			Required: true,
		},
		{
			ID:    "content_creation_capacity",
			Title: "How would you rate your content creation capabilities?",
			Kind:  model.KindChoice,
			Options: []string{
				"Limited - need lots of help", "Basic - can create simple content",
				"Good - comfortable with most formats", "Excellent - can create professional content",
				"Have a dedicated content team",
			},
			Required: true,
		},
		{
			ID:    "automation_preference",
			Title: "How do you feel about using automation tools?",
			Kind:  model.KindChoice,
			Options: []string{
				"Love automation - want to automate everything", "Open to automation for basic tasks",
				"Prefer manual approach with some automation", "Mostly manual with minimal automation",
				"Completely manual approach",
			},
			Required: true,
		},
		{
			ID:    "measurable_goals",
			Title: "What specific metric matters most to you?",
			Kind:  model.KindChoice,
			Options: []string{
				"Follower growth", "Engagement rate", "Website clicks", "Lead generation",
				"Sales conversions", "Brand mentions", "Video views", "Not sure yet",
			},
			Required: true,
		},
		{
			ID:    "seasonality",
			Title: "Does your business have seasonal trends?",
			Kind:  model.KindChoice,
			Options: []string{
				"Yes - strong seasonal patterns", "Somewhat seasonal", "No - consistent year-round", "Not applicable",
			},
			Required: true,
		},
		{
			ID:       "geographic_focus",
			Title:    "What's your geographic target market?",
			Kind:     model.KindChoice,
			Options:  []string{model.GeoLocal, "Regional/State-wide", "National", "International", "Global"},
			Required: true,
		},
		{
			ID:    "brand_stage",
			Title: "What stage is your brand in?",
			Kind:  model.KindChoice,
			Options: []string{
				"Building brand awareness", "Establishing credibility", "Growing customer base",
				"Scaling operations", "Market leader maintaining position",
			},
			Required: true,
		},
		{
			ID:          "challenges",
			Title:       "What's your biggest social media challenge? Be as specific as possible.",
			Kind:        model.KindText,
			Placeholder: "e.g., Creating consistent content while managing a full-time job, measuring ROI from social media efforts, finding time to engage authentically with followers...",
			Disclaimer:  "Detailed challenges help us provide more targeted solutions!",
		},
	}
}

// advancedQuestions lists the advanced-tier questions in form order. None
// is required.
func advancedQuestions() []model.Question {
	return []model.Question{
		{
			ID:          "monthly_ad_budget",
			Title:       "What is your total monthly budget for paid ads?",
			Kind:        model.KindNumber,
			Min:         bound(0),
			Unit:        "USD",
			Placeholder: "e.g., 250",
			Disclaimer:  "This helps determine the scale and type of ad campaigns we recommend.",
		},
		{
			ID:          "monthly_tools_budget",
			Title:       "What is your monthly budget for marketing tools?",
			Kind:        model.KindNumber,
			Min:         bound(0),
			Unit:        "USD",
			Placeholder: "e.g., 50",
			Disclaimer:  "For tools like schedulers, design software, CRMs, etc.",
		},
		{
			ID:          "aov",
			Title:       "What is your Average Order Value (AOV) or average client sale value?",
			Kind:        model.KindNumber,
			Min:         bound(0),
			Unit:        "USD",
			Placeholder: "e.g., 99",
			Disclaimer:  "If you sell products, use the average cart value. If you sell services, use the average project/client value.",
		},
		{
			ID:          "conversion_rate",
			Title:       "What is your estimated conversion rate from social media?",
			Kind:        model.KindNumber,
			Min:         bound(0),
			Max:         bound(100),
			Unit:        "%",
			Placeholder: "e.g., 2",
			Disclaimer:  "The percentage of profile visitors who become a lead or customer. Estimate if unsure.",
		},
		{
			ID:          "sales_cycle",
			Title:       "What is your typical sales cycle length?",
			Kind:        model.KindNumber,
			Min:         bound(0),
			Unit:        "days",
			Placeholder: "e.g., 14",
			Disclaimer:  "The average time from a person's first interaction with your brand to their purchase.",
		},
		{
			ID:          "customer_objections",
			Title:       "What are the top 3 objections you hear from potential customers?",
			Kind:        model.KindText,
			Placeholder: `e.g., "It's too expensive", "I don't have time for this", "I'm not sure it will work for me"`,
			Disclaimer:  "List them separated by commas. This helps us craft content that overcomes these hurdles.",
		},
		{
			ID:          "usp",
			Title:       "What is your Unique Selling Proposition (USP) in one sentence?",
			Kind:        model.KindText,
			Placeholder: `e.g., "We are the only social media scheduler that automatically recycles your best content."`,
			Disclaimer:  "What makes you different from and better than your competitors?",
		},
		{
			ID:          "best_performing_post",
			Title:       "Describe your best-performing post or campaign from the last 6 months.",
			Kind:        model.KindText,
			Placeholder: `e.g., "A Reel showing a time-lapse of our product being made got 50k views and 20 sales."`,
			Disclaimer:  "Include the format, topic, and any metrics you have (views, clicks, sales).",
		},
		{
			ID:          "worst_performing_content",
			Title:       "Describe a content type that has performed poorly for you and why you think it failed.",
			Kind:        model.KindText,
			Placeholder: `e.g., "Our long text-only LinkedIn posts get almost no engagement."`,
			Disclaimer:  "Understanding what doesn't work is as important as knowing what does.",
		},
		{
			ID:      "primary_business_objective",
			Title:   "What is your primary business objective for the next 30 days?",
			Kind:    model.KindChoice,
			Options: []string{"Revenue", "Leads", "Appointments", "Community Growth"},
		},
		{
			ID:          "objective_target",
			Title:       "What is your specific target for that objective?",
			Kind:        model.KindNumber,
			Min:         bound(0),
			Placeholder: "e.g., 5000 (for Revenue), 50 (for Leads)",
			Disclaimer:  "Set a measurable goal for your chosen objective (e.g., a specific number of leads or dollar amount).",
		},
		{
			ID:          "team_execution_capacity",
			Title:       "How many people are on your marketing/content team?",
			Kind:        model.KindNumber,
			Min:         bound(0),
			Unit:        "people",
			Placeholder: "e.g., 1",
		},
		{
			ID:          "weekly_hours_capacity",
			Title:       "How many total hours per week can the team dedicate to content & social media?",
			Kind:        model.KindNumber,
			Min:         bound(0),
			Unit:        "hours/week",
			Placeholder: "e.g., 10",
		},
		{
			ID:    "camera_comfort",
			Title: `On a scale of 1-5, how comfortable are you with creating "face-on-camera" content?`,
			Kind:  model.KindNumber,
			Min:   bound(1),
			Max:   bound(5),
			Step:  1,
			Unit:  "(1 = Not at all, 5 = Very comfortable)",
		},
		{
			ID:      "willing_to_outsource",
			Title:   "Are you willing to outsource creative tasks (like video editing or graphic design)?",
			Kind:    model.KindChoice,
			Options: []string{model.OutsourceYes, model.OutsourceNo},
		},
		{
			ID:          "technical_constraints",
			Title:       "List any technical constraints or requirements.",
			Kind:        model.KindText,
			Placeholder: `e.g., "No online shop, all sales via DM", "Must comply with healthcare privacy laws"`,
			Disclaimer:  "e.g., website limitations, legal regulations, specific languages.",
		},
		{
			ID:          "current_funnel",
			Title:       "Briefly describe your current sales funnel.",
			Kind:        model.KindText,
			Placeholder: `e.g., "Lead Magnet (PDF) -> Email sequence -> Book a call link"`,
			Disclaimer:  "How do you capture, nurture, and close leads?",
		},
		{
			ID:    "growth_lever",
			Title: "What is the biggest growth lever you want to test this month?",
			Kind:  model.KindChoice,
			Options: []string{
				"Paid Traffic", "Influencer Collaboration", "Referral Program", "Giveaway / Contest",
				"Organic Community Building", "SEO for Social Profiles",
			},
		},
	}
}

// BasicCatalog returns the basic-tier questions in form order.
func BasicCatalog() []model.Question {
	return withTier(model.TierBasic, basicQuestions())
}

// AdvancedCatalog returns the advanced-tier questions in form order.
func AdvancedCatalog() []model.Question {
	return withTier(model.TierAdvanced, advancedQuestions())
}

func withTier(tier model.Tier, qs []model.Question) []model.Question {
	for i := range qs {
		qs[i].Tier = tier
	}
	return qs
}
