package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigniq/internal/campaign"
	"campaigniq/internal/store"
	"campaigniq/internal/user"
	"campaigniq/pkg/httperr"
)

type fakeCampaignRepo struct {
	byID      map[string]*campaign.Campaign
	byCreator map[string][]campaign.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{
		byID:      map[string]*campaign.Campaign{},
		byCreator: map[string][]campaign.Campaign{},
	}
}

func (f *fakeCampaignRepo) GetByID(ctx context.Context, id string) (*campaign.Campaign, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeCampaignRepo) ListByCreator(ctx context.Context, creatorID string) ([]campaign.Campaign, error) {
	return f.byCreator[creatorID], nil
}

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newAnalytics(repo *fakeCampaignRepo, gen *fakeGenerator) *Service {
	return NewService(repo, gen, slog.New(slog.DiscardHandler))
}

func TestOverview(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.byCreator["u1"] = []campaign.Campaign{
		{ID: "c1", Status: campaign.StatusActive, RaisedAmount: 120, BackersCount: 6},
		{ID: "c2", Status: campaign.StatusDraft, RaisedAmount: 0, BackersCount: 0},
		{ID: "c3", Status: campaign.StatusActive, RaisedAmount: 80, BackersCount: 3},
	}
	svc := newAnalytics(repo, &fakeGenerator{})

	o, err := svc.Overview(context.Background(), &user.User{ID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 3, o.TotalCampaigns)
	assert.Equal(t, 2, o.ActiveCampaigns)
	assert.Equal(t, 200.0, o.TotalRaised)
	assert.Equal(t, 9, o.TotalBackers)
	assert.Len(t, o.Campaigns, 3)
}

func TestOverviewEmpty(t *testing.T) {
	svc := newAnalytics(newFakeCampaignRepo(), &fakeGenerator{})

	o, err := svc.Overview(context.Background(), &user.User{ID: "nobody"})
	require.NoError(t, err)
	assert.Zero(t, o.TotalCampaigns)
	assert.Zero(t, o.TotalRaised)
}

func TestMonteCarlo(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.byID["c1"] = &campaign.Campaign{ID: "c1", GoalAmount: 10000, RaisedAmount: 2000}
	svc := newAnalytics(repo, &fakeGenerator{})

	res, err := svc.MonteCarlo(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, 4750.0, res.Pessimistic)
	assert.Equal(t, 7000.0, res.Realistic)
	assert.Equal(t, 8350.0, res.Optimistic)
	assert.GreaterOrEqual(t, res.SuccessProbability, 60.0)
	assert.LessOrEqual(t, res.SuccessProbability, 95.0)
	assert.Len(t, res.KeyInsights, 3)

	require.Len(t, res.ProgressionData, 25)
	for i, p := range res.ProgressionData {
		assert.Equal(t, i+1, p.Day)
		assert.GreaterOrEqual(t, p.Amount, 2000.0, "progression never drops below the amount already raised")
	}
}

func TestMonteCarloUnknownCampaign(t *testing.T) {
	svc := newAnalytics(newFakeCampaignRepo(), &fakeGenerator{})

	_, err := svc.MonteCarlo(context.Background(), "missing")

	var herr *httperr.Error
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, 404, herr.Status)
}

func TestCompetitorAnalysis(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.byID["c1"] = &campaign.Campaign{ID: "c1", Title: "t", Category: "tech", GoalAmount: 5000}
	gen := &fakeGenerator{response: `{
		"market_overview": {
			"category_performance": "Tech campaigns perform well.",
			"average_success_rate": "72.00%",
			"typical_funding_min": 20000,
			"typical_funding_max": 800000
		},
		"key_trends": ["Video matters", "Early momentum matters"],
		"top_competitors": [
			{"name": "GadgetX", "funding": 500000, "description": "d", "success_factors": "s"}
		]
	}`}
	svc := newAnalytics(repo, gen)

	a, err := svc.CompetitorAnalysis(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "72.00%", a.MarketOverview.AverageSuccessRate)
	assert.Len(t, a.TopCompetitors, 1)
	assert.Equal(t, "GadgetX", a.TopCompetitors[0].Name)
}

func TestCompetitorAnalysisFallback(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.byID["c1"] = &campaign.Campaign{ID: "c1", Title: "t", Category: "games", GoalAmount: 5000}

	for name, gen := range map[string]*fakeGenerator{
		"generator error": {err: errors.New("down")},
		"malformed json":  {response: "not json"},
		"missing fields":  {response: `{"key_trends": []}`},
	} {
		t.Run(name, func(t *testing.T) {
			svc := newAnalytics(repo, gen)

			a, err := svc.CompetitorAnalysis(context.Background(), "c1")
			require.NoError(t, err)
			assert.Contains(t, a.MarketOverview.CategoryPerformance, "games")
			assert.Len(t, a.TopCompetitors, 3)
			assert.Len(t, a.KeyTrends, 3)
		})
	}
}

func TestStrategicRecommendations(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.byID["c1"] = &campaign.Campaign{ID: "c1", Title: "t", Category: "tech", GoalAmount: 5000, RaisedAmount: 1000}
	gen := &fakeGenerator{response: `{
		"success_prediction": {"percentage": 88, "level": "High", "category_average": "65%", "similar_campaigns": "do fine"},
		"success_factors": ["Strong story"],
		"risk_factors": ["Tight timeline"],
		"action_recommendations": [{"title": "Post update", "description": "d", "priority": "High"}],
		"strategic_recommendations": [{"category": "Marketing", "priority": "High", "description": "d"}]
	}`}
	svc := newAnalytics(repo, gen)

	r, err := svc.StrategicRecommendations(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 88.0, r.SuccessPrediction.Percentage)
	assert.Equal(t, "High", r.SuccessPrediction.Level)
}

func TestStrategicRecommendationsFallback(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.byID["c1"] = &campaign.Campaign{ID: "c1", Title: "t", Category: "tech", GoalAmount: 10000, RaisedAmount: 8000}
	svc := newAnalytics(repo, &fakeGenerator{err: errors.New("down")})

	r, err := svc.StrategicRecommendations(context.Background(), "c1")
	require.NoError(t, err)

	// 80% funded plus the 20 point bump, capped at 95.
	assert.Equal(t, 95.0, r.SuccessPrediction.Percentage)
	assert.Equal(t, "High", r.SuccessPrediction.Level)
	assert.NotEmpty(t, r.SuccessFactors)
	assert.NotEmpty(t, r.ActionRecommendations)
}

func TestStrategicRecommendationsFallbackFloor(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.byID["c1"] = &campaign.Campaign{ID: "c1", Title: "t", Category: "tech", GoalAmount: 10000, RaisedAmount: 0}
	svc := newAnalytics(repo, &fakeGenerator{response: "garbage"})

	r, err := svc.StrategicRecommendations(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 70.0, r.SuccessPrediction.Percentage)
	assert.Equal(t, "Medium", r.SuccessPrediction.Level)
}
