package repository

import (
	"context"

	"campaigniq/internal/campaign"
	"campaigniq/internal/store"
)

const campaignsTable = "campaigns"

// listLimit caps every list query; the store applies it server-side.
const listLimit = 1000

type StoreCampaignRepository struct {
	store *store.Client
}

func NewStoreCampaignRepository(s *store.Client) *StoreCampaignRepository {
	return &StoreCampaignRepository{store: s}
}

// List returns active campaigns, optionally narrowed by category and a
// case-insensitive title search.
func (r *StoreCampaignRepository) List(ctx context.Context, category, search string) ([]campaign.Campaign, error) {
	filter := store.Where().Eq("status", campaign.StatusActive).Limit(listLimit)
	if category != "" {
		filter = filter.Eq("category", category)
	}
	if search != "" {
		filter = filter.ILike("title", search)
	}

	var campaigns []campaign.Campaign
	if err := r.store.Select(ctx, campaignsTable, filter, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *StoreCampaignRepository) ListByCreator(ctx context.Context, creatorID string) ([]campaign.Campaign, error) {
	filter := store.Where().Eq("creator_id", creatorID).Limit(listLimit)

	var campaigns []campaign.Campaign
	if err := r.store.Select(ctx, campaignsTable, filter, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// ListAll returns campaigns in every status, up to limit rows.
func (r *StoreCampaignRepository) ListAll(ctx context.Context, limit int) ([]campaign.Campaign, error) {
	var campaigns []campaign.Campaign
	if err := r.store.Select(ctx, campaignsTable, store.Where().Limit(limit), &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *StoreCampaignRepository) GetByID(ctx context.Context, id string) (*campaign.Campaign, error) {
	var c campaign.Campaign
	if err := r.store.SelectOne(ctx, campaignsTable, store.Where().Eq("id", id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *StoreCampaignRepository) Create(ctx context.Context, c *campaign.Campaign) error {
	return r.store.Insert(ctx, campaignsTable, c)
}

// Update patches only the keys present in patch.
func (r *StoreCampaignRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	return r.store.Update(ctx, campaignsTable, store.Where().Eq("id", id), patch)
}

func (r *StoreCampaignRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, campaignsTable, store.Where().Eq("id", id))
}

// UpdateFunding overwrites the funding counters. Callers read the current
// values first; the store gives no cross-request atomicity.
func (r *StoreCampaignRepository) UpdateFunding(ctx context.Context, id string, raised float64, backers int) error {
	return r.Update(ctx, id, map[string]any{
		"raised_amount": raised,
		"backers_count": backers,
	})
}
