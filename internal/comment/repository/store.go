package repository

import (
	"context"

	"campaigniq/internal/comment"
	"campaigniq/internal/store"
)

const commentsTable = "comments"

type StoreCommentRepository struct {
	store *store.Client
}

func NewStoreCommentRepository(s *store.Client) *StoreCommentRepository {
	return &StoreCommentRepository{store: s}
}

func (r *StoreCommentRepository) ListByCampaign(ctx context.Context, campaignID string) ([]comment.Comment, error) {
	filter := store.Where().Eq("campaign_id", campaignID).Limit(1000)

	var comments []comment.Comment
	if err := r.store.Select(ctx, commentsTable, filter, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *StoreCommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	return r.store.Insert(ctx, commentsTable, c)
}
