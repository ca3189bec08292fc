package service

import "fmt"

// Static fallback payloads. The platform prefers returning a plausible
// response over surfacing upstream failure detail, so every JSON-shaped
// AI feature has exactly one of these.

func fallbackTitles(title string) []string {
	return []string{
		fmt.Sprintf("%s - Make It Real", title),
		fmt.Sprintf("Support %s Today", title),
		fmt.Sprintf("%s: Your Backing Matters", title),
		fmt.Sprintf("Join %s - Create Impact", title),
		fmt.Sprintf("%s - Be Part of Something Great", title),
	}
}

func fallbackPrediction(p PredictionParams) *SuccessPrediction {
	score := 65.0
	if p.GoalAmount < 10000 {
		score += 10
	}
	if len(p.RewardTiers) >= 3 {
		score += 5
	}

	return &SuccessPrediction{
		SuccessPercentage: min(95, score),
		ConfidenceLevel:   "Medium",
		Analysis: fmt.Sprintf("The campaign's success probability is moderately strong based on the %s category. "+
			"The goal of $%.0f is achievable with proper marketing and community engagement.",
			p.Category, p.GoalAmount),
		Recommendations: []string{
			"Expand reward tiers to include more options for different contribution levels",
			"Create a detailed budget breakdown to build trust with backers",
			"Promote through social media and community events to reach a wider audience",
			"Add testimonials or endorsements to strengthen credibility",
			"Incorporate visuals and videos to make the campaign more compelling",
		},
	}
}

func fallbackStrategy(p StrategyParams) *MarketingStrategy {
	return &MarketingStrategy{
		Overview: fmt.Sprintf("A multi-channel marketing approach focused on building awareness and community "+
			"engagement for this %s campaign, leveraging social media, content marketing, and strategic partnerships.",
			p.Category),
		TargetAudience: TargetAudience{
			Primary: fmt.Sprintf("Enthusiasts and early adopters in the %s space who value innovation "+
				"and community-driven projects", p.Category),
			Secondary: "Broader audience interested in supporting creative and impactful projects",
		},
		Channels: []MarketingChannel{
			{
				Name: "Social Media Marketing",
				Strategy: "Create engaging content on Instagram, Twitter, and Facebook. Share behind-the-scenes " +
					"stories, progress updates, and user testimonials. Use hashtags to increase visibility.",
				Priority: "High",
			},
			{
				Name: "Email Marketing",
				Strategy: "Build an email list and send regular updates about campaign milestones, exclusive " +
					"offers, and compelling stories that resonate with backers.",
				Priority: "High",
			},
			{
				Name: "Influencer Partnerships",
				Strategy: fmt.Sprintf("Identify and collaborate with influencers in the %s niche who can "+
					"authentically promote the campaign to their followers.", p.Category),
				Priority: "Medium",
			},
			{
				Name: "Content Marketing",
				Strategy: "Create blog posts, videos, and infographics that showcase the campaign's value " +
					"proposition and impact. Share success stories and expert insights.",
				Priority: "Medium",
			},
		},
		Timeline: []MarketingPhase{
			{
				Phase:    "Pre-Launch (2-4 weeks before)",
				Duration: "2-4 weeks",
				Actions: []string{
					"Build landing page and collect email subscribers",
					"Create teaser content and build anticipation",
					"Reach out to potential influencers and media outlets",
				},
			},
			{
				Phase:    "Launch Week",
				Duration: "7 days",
				Actions: []string{
					"Announce campaign launch across all channels",
					"Engage with early backers and build momentum",
					"Leverage PR and media coverage opportunities",
				},
			},
			{
				Phase:    "Mid-Campaign Push",
				Duration: "2-3 weeks",
				Actions: []string{
					"Share progress updates and celebrate milestones",
					"Run targeted ads to reach new audiences",
					"Host live Q&A sessions or webinars",
				},
			},
		},
		KeyMessages: []string{
			fmt.Sprintf("Join us in making %s a reality", p.Title),
			"Your support drives innovation and creates lasting impact",
			"Be part of a community that values quality and authenticity",
		},
		BudgetAllocation: map[string]string{
			"social_media":            "30%",
			"content_creation":        "25%",
			"influencer_partnerships": "25%",
			"paid_advertising":        "20%",
		},
	}
}
