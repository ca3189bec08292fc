package service

import (
	"fmt"

	"campaigniq/internal/campaign"
)

func fallbackCompetitorAnalysis(c *campaign.Campaign) *CompetitorAnalysis {
	return &CompetitorAnalysis{
		MarketOverview: MarketOverview{
			CategoryPerformance: fmt.Sprintf("The %s category shows steady backer interest with strong campaigns typically exceeding their goals.", c.Category),
			AverageSuccessRate:  "65.00%",
			TypicalFundingMin:   25000,
			TypicalFundingMax:   500000,
		},
		KeyTrends: []string{
			"Campaigns with video content raise significantly more than those without",
			"Early momentum in the first 48 hours strongly predicts overall success",
			"Transparent production timelines build backer trust and repeat pledges",
		},
		TopCompetitors: []Competitor{
			{
				Name:           "Category Leader",
				Funding:        350000,
				Description:    "A well-executed campaign in the same category",
				SuccessFactors: "Strong visuals, active community engagement, realistic goal",
			},
			{
				Name:           "Rising Challenger",
				Funding:        180000,
				Description:    "A newer entrant with a focused product pitch",
				SuccessFactors: "Clear value proposition and early-bird pricing",
			},
			{
				Name:           "Niche Favorite",
				Funding:        95000,
				Description:    "A smaller campaign serving a dedicated audience",
				SuccessFactors: "Deep community ties and frequent campaign updates",
			},
		},
	}
}

func fallbackRecommendations(c *campaign.Campaign) *Recommendations {
	pct := 0.0
	if c.GoalAmount > 0 {
		pct = c.RaisedAmount / c.GoalAmount * 100
	}
	predicted := min(95, max(70, int(pct+20)))

	level := "Medium"
	if predicted >= 85 {
		level = "High"
	}

	return &Recommendations{
		SuccessPrediction: SuccessOutlook{
			Percentage:       float64(predicted),
			Level:            level,
			CategoryAverage:  "65% success rate",
			SimilarCampaigns: fmt.Sprintf("Campaigns in the %s category with comparable goals tend to succeed when they hold steady momentum.", c.Category),
		},
		SuccessFactors: []string{
			"Clear and compelling campaign story",
			"Reward tiers at accessible price points",
			"Regular updates that keep backers engaged",
		},
		RiskFactors: []string{
			"Slowing momentum in the middle of the campaign",
			"Underestimated fulfillment costs",
			"Limited reach beyond the initial audience",
		},
		ActionRecommendations: []ActionRecommendation{
			{
				Title:       "Post a campaign update",
				Description: "Share progress, behind-the-scenes content, or a stretch goal to re-engage backers.",
				Priority:    "High",
			},
			{
				Title:       "Activate your network",
				Description: "Ask existing backers to share the campaign; referred backers convert at a higher rate.",
				Priority:    "High",
			},
			{
				Title:       "Review reward tier pricing",
				Description: "Ensure there is an attractive entry-level tier under $25 to lower the pledge barrier.",
				Priority:    "Medium",
			},
		},
		StrategicRecommendations: []StrategicRecommendation{
			{
				Category:    "Marketing",
				Priority:    "High",
				Description: "Invest in short-form video content showcasing the product in use; video-led campaigns consistently outperform.",
			},
			{
				Category:    "Pricing Strategy",
				Priority:    "High",
				Description: "Introduce a limited early-bird tier to create urgency and reward early supporters.",
				RewardTiers: []campaign.RewardTier{
					{Amount: 25, Description: "Early-bird edition at a discounted price"},
					{Amount: 100, Description: "Premium bundle with exclusive extras"},
				},
			},
			{
				Category:    "Community",
				Priority:    "Medium",
				Description: "Run a live Q&A session to answer backer questions and build trust before the final push.",
			},
		},
	}
}
