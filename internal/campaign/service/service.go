package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaigniq/internal/campaign"
	"campaigniq/internal/store"
	"campaigniq/internal/user"
	"campaigniq/pkg/httperr"
)

var ErrCampaignNotFound = httperr.NotFound("Campaign not found")

type CampaignRepository interface {
	List(ctx context.Context, category, search string) ([]campaign.Campaign, error)
	ListByCreator(ctx context.Context, creatorID string) ([]campaign.Campaign, error)
	ListAll(ctx context.Context, limit int) ([]campaign.Campaign, error)
	GetByID(ctx context.Context, id string) (*campaign.Campaign, error)
	Create(ctx context.Context, c *campaign.Campaign) error
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

// SuccessAnalyzer scores a freshly created campaign. Implementations are
// best-effort; Create logs failures and moves on.
type SuccessAnalyzer interface {
	AnalyzeSuccess(ctx context.Context, c *campaign.Campaign) error
}

// UserCounter supplies the user total for admin stats.
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

type Service struct {
	repo     CampaignRepository
	analyzer SuccessAnalyzer
	users    UserCounter
	log      *slog.Logger
}

func NewService(repo CampaignRepository, analyzer SuccessAnalyzer, users UserCounter, log *slog.Logger) *Service {
	return &Service{repo: repo, analyzer: analyzer, users: users, log: log}
}

func (s *Service) List(ctx context.Context, category, search string) ([]campaign.Campaign, error) {
	return s.repo.List(ctx, category, search)
}

func (s *Service) Get(ctx context.Context, id string) (*campaign.Campaign, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return c, nil
}

type CreateParams struct {
	Title       string
	Description string
	Category    string
	GoalAmount  float64
	ImageURL    string
}

// Create stores a campaign owned by u and kicks off a best-effort AI
// success analysis. Analysis failure never fails the create.
func (s *Service) Create(ctx context.Context, u *user.User, p CreateParams) (*campaign.Campaign, error) {
	c := &campaign.Campaign{
		ID:           uuid.NewString(),
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		GoalAmount:   p.GoalAmount,
		CreatorID:    u.ID,
		CreatorName:  u.Name,
		ImageURL:     p.ImageURL,
		Status:       campaign.StatusActive,
		DurationDays: 30,
		Tags:         []string{},
		RewardTiers:  []campaign.RewardTier{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	// The analysis row references the campaign, so it is written only
	// after the campaign itself exists.
	if s.analyzer != nil {
		if err := s.analyzer.AnalyzeSuccess(ctx, c); err != nil {
			s.log.Error("campaign success analysis failed", "campaign_id", c.ID, "err", err)
		}
	}
	return c, nil
}

type CreateExtendedParams struct {
	CreateParams
	DurationDays int
	Status       string
	Tags         []string
	RewardTiers  []campaign.RewardTier
}

func (s *Service) CreateExtended(ctx context.Context, u *user.User, p CreateExtendedParams) (*campaign.Campaign, error) {
	status := p.Status
	if status == "" {
		status = campaign.StatusActive
	}
	duration := p.DurationDays
	if duration <= 0 {
		duration = 30
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	tiers := p.RewardTiers
	if tiers == nil {
		tiers = []campaign.RewardTier{}
	}

	c := &campaign.Campaign{
		ID:           uuid.NewString(),
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		GoalAmount:   p.GoalAmount,
		CreatorID:    u.ID,
		CreatorName:  u.Name,
		ImageURL:     p.ImageURL,
		Status:       status,
		DurationDays: duration,
		Tags:         tags,
		RewardTiers:  tiers,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update patches the given fields after the ownership gate: only the
// creator or an admin may mutate a campaign.
func (s *Service) Update(ctx context.Context, u *user.User, id string, patch map[string]any) (*campaign.Campaign, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.EditableBy(u.ID, u.IsAdmin) {
		return nil, httperr.ErrForbidden
	}

	if len(patch) > 0 {
		if err := s.repo.Update(ctx, id, patch); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, u *user.User, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !c.EditableBy(u.ID, u.IsAdmin) {
		return httperr.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListMine(ctx context.Context, u *user.User) ([]campaign.Campaign, error) {
	return s.repo.ListByCreator(ctx, u.ID)
}

// Row caps for the admin surface. Listing stays pageable-small; stats
// scans a wider window so the totals stay honest.
const (
	adminListLimit  = 1000
	adminStatsLimit = 10000
)

func (s *Service) AdminListAll(ctx context.Context) ([]campaign.Campaign, error) {
	return s.repo.ListAll(ctx, adminListLimit)
}

type AdminStats struct {
	TotalCampaigns  int     `json:"total_campaigns"`
	ActiveCampaigns int     `json:"active_campaigns"`
	TotalUsers      int     `json:"total_users"`
	TotalRaised     float64 `json:"total_raised"`
}

func (s *Service) AdminStats(ctx context.Context) (*AdminStats, error) {
	campaigns, err := s.repo.ListAll(ctx, adminStatsLimit)
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{TotalCampaigns: len(campaigns)}
	for _, c := range campaigns {
		if c.Status == campaign.StatusActive {
			stats.ActiveCampaigns++
		}
		stats.TotalRaised += c.RaisedAmount
	}

	stats.TotalUsers, err = s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
