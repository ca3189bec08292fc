package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	aiservice "campaigniq/internal/ai/service"
	"campaigniq/internal/campaign"
	"campaigniq/internal/store"
	"campaigniq/internal/user"
	"campaigniq/pkg/httperr"
)

type CampaignRepository interface {
	GetByID(ctx context.Context, id string) (*campaign.Campaign, error)
	ListByCreator(ctx context.Context, creatorID string) ([]campaign.Campaign, error)
}

type Service struct {
	campaigns CampaignRepository
	gen       aiservice.Generator
	log       *slog.Logger
}

func NewService(campaigns CampaignRepository, gen aiservice.Generator, log *slog.Logger) *Service {
	return &Service{campaigns: campaigns, gen: gen, log: log}
}

type Overview struct {
	TotalCampaigns  int                 `json:"total_campaigns"`
	ActiveCampaigns int                 `json:"active_campaigns"`
	TotalRaised     float64             `json:"total_raised"`
	TotalBackers    int                 `json:"total_backers"`
	Campaigns       []campaign.Campaign `json:"campaigns"`
}

// Overview aggregates the caller's own campaigns.
func (s *Service) Overview(ctx context.Context, u *user.User) (*Overview, error) {
	campaigns, err := s.campaigns.ListByCreator(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	o := &Overview{TotalCampaigns: len(campaigns), Campaigns: campaigns}
	for _, c := range campaigns {
		o.TotalRaised += c.RaisedAmount
		o.TotalBackers += c.BackersCount
		if c.Status == campaign.StatusActive {
			o.ActiveCampaigns++
		}
	}
	return o, nil
}

type ProgressionPoint struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

type MonteCarloResult struct {
	Pessimistic        float64            `json:"pessimistic"`
	Realistic          float64            `json:"realistic"`
	Optimistic         float64            `json:"optimistic"`
	SuccessProbability float64            `json:"success_probability"`
	ProgressionData    []ProgressionPoint `json:"progression_data"`
	KeyInsights        []string           `json:"key_insights"`
}

// MonteCarlo simulates funding scenarios for the remaining campaign days.
// The scenarios are fixed fractions of the goal; the progression curve
// gets per-day noise.
func (s *Service) MonteCarlo(ctx context.Context, campaignID string) (*MonteCarloResult, error) {
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	const daysRemaining = 25

	goal := c.GoalAmount
	raised := c.RaisedAmount
	realistic := goal * 0.70

	probability := raised/goal*100 + 10 + rand.Float64()*20
	probability = min(95, max(60, probability))

	progression := make([]ProgressionPoint, 0, daysRemaining)
	for day := 1; day <= daysRemaining; day++ {
		base := raised + (realistic-raised)*float64(day)/daysRemaining
		variance := (rand.Float64()*0.25 - 0.10) * base
		amount := max(raised, base+variance)
		progression = append(progression, ProgressionPoint{Day: day, Amount: round2(amount)})
	}

	return &MonteCarloResult{
		Pessimistic:        round2(goal * 0.475),
		Realistic:          round2(realistic),
		Optimistic:         round2(goal * 0.835),
		SuccessProbability: math.Round(probability*10) / 10,
		ProgressionData:    progression,
		KeyInsights: []string{
			"Campaign exhibits a typical slow start, gaining momentum as it progresses.",
			"Mid-campaign boosts show significant increases, indicating effective marketing impact.",
			"Final rush towards the campaign's end helps maximize funding, ensuring a potential stretch goal achievement.",
		},
	}, nil
}

func (s *Service) getCampaign(ctx context.Context, id string) (*campaign.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFound("Campaign not found")
		}
		return nil, err
	}
	return c, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type MarketOverview struct {
	CategoryPerformance string  `json:"category_performance" validate:"required"`
	AverageSuccessRate  string  `json:"average_success_rate" validate:"required"`
	TypicalFundingMin   float64 `json:"typical_funding_min"`
	TypicalFundingMax   float64 `json:"typical_funding_max"`
}

type Competitor struct {
	Name           string  `json:"name" validate:"required"`
	Funding        float64 `json:"funding"`
	Description    string  `json:"description"`
	SuccessFactors string  `json:"success_factors"`
}

type CompetitorAnalysis struct {
	MarketOverview MarketOverview `json:"market_overview"`
	KeyTrends      []string       `json:"key_trends" validate:"required,min=1"`
	TopCompetitors []Competitor   `json:"top_competitors" validate:"dive"`
}

// CompetitorAnalysis asks the model for a category-level market picture.
func (s *Service) CompetitorAnalysis(ctx context.Context, campaignID string) (*CompetitorAnalysis, error) {
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are analyzing a crowdfunding campaign in the %s category.
Campaign Title: %s
Goal: $%.0f
Description: %s

Provide a comprehensive competitor analysis in JSON format with the following structure:
{
    "market_overview": {
        "category_performance": "Detailed text about the category performance",
        "average_success_rate": "A percentage as a string (e.g., '80.00%%')",
        "typical_funding_min": 50000,
        "typical_funding_max": 1000000
    },
    "key_trends": [
        "Trend 1 description",
        "Trend 2 description",
        "Trend 3 description"
    ],
    "top_competitors": [
        {
            "name": "Competitor Name",
            "funding": 1064708,
            "description": "Brief description",
            "success_factors": "What made them successful"
        }
    ]
}

Make it realistic and specific to the %s category. Provide 3 top competitors with actual realistic names and amounts.`,
		c.Category, c.Title, c.GoalAmount, c.Description, c.Category)

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("competitor analysis failed", "campaign_id", campaignID, "err", err)
		return fallbackCompetitorAnalysis(c), nil
	}

	var analysis CompetitorAnalysis
	if err := aiservice.DecodeStrict(response, &analysis); err != nil {
		s.log.Warn("competitor analysis output rejected", "err", err)
		return fallbackCompetitorAnalysis(c), nil
	}
	return &analysis, nil
}

type SuccessOutlook struct {
	Percentage       float64 `json:"percentage"`
	Level            string  `json:"level" validate:"required"`
	CategoryAverage  string  `json:"category_average"`
	SimilarCampaigns string  `json:"similar_campaigns"`
}

type ActionRecommendation struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type StrategicRecommendation struct {
	Category    string                `json:"category" validate:"required"`
	Priority    string                `json:"priority"`
	Description string                `json:"description" validate:"required"`
	RewardTiers []campaign.RewardTier `json:"reward_tiers,omitempty"`
}

type Recommendations struct {
	SuccessPrediction        SuccessOutlook            `json:"success_prediction"`
	SuccessFactors           []string                  `json:"success_factors" validate:"required,min=1"`
	RiskFactors              []string                  `json:"risk_factors" validate:"required,min=1"`
	ActionRecommendations    []ActionRecommendation    `json:"action_recommendations" validate:"dive"`
	StrategicRecommendations []StrategicRecommendation `json:"strategic_recommendations" validate:"dive"`
}

// StrategicRecommendations asks the model for campaign-specific guidance;
// the fallback is computed from the funding ratio.
func (s *Service) StrategicRecommendations(ctx context.Context, campaignID string) (*Recommendations, error) {
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are providing strategic recommendations for a crowdfunding campaign.
Campaign: %s
Category: %s
Goal: $%.0f
Current Raised: $%.0f
Description: %s

Provide strategic recommendations in JSON format:
{
    "success_prediction": {
        "percentage": 85,
        "level": "High",
        "category_average": "65%% success rate",
        "similar_campaigns": "<how campaigns like this one tend to perform>"
    },
    "success_factors": ["Factor 1", "Factor 2", "Factor 3"],
    "risk_factors": ["Risk 1", "Risk 2", "Risk 3"],
    "action_recommendations": [
        {
            "title": "Action title",
            "description": "Detailed description",
            "priority": "High"
        }
    ],
    "strategic_recommendations": [
        {
            "category": "Product Offering",
            "priority": "High",
            "description": "Recommendation description"
        },
        {
            "category": "Pricing Strategy",
            "priority": "High",
            "description": "Recommendation with reward tiers",
            "reward_tiers": [
                {"amount": 25, "description": "Entry reward"},
                {"amount": 100, "description": "Premium reward"}
            ]
        }
    ]
}

Make it specific and actionable for this campaign.`,
		c.Title, c.Category, c.GoalAmount, c.RaisedAmount, c.Description)

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("strategic recommendations failed", "campaign_id", campaignID, "err", err)
		return fallbackRecommendations(c), nil
	}

	var recommendations Recommendations
	if err := aiservice.DecodeStrict(response, &recommendations); err != nil {
		s.log.Warn("strategic recommendations output rejected", "err", err)
		return fallbackRecommendations(c), nil
	}
	return &recommendations, nil
}
