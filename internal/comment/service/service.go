package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campaigniq/internal/comment"
	"campaigniq/internal/user"
)

type CommentRepository interface {
	ListByCampaign(ctx context.Context, campaignID string) ([]comment.Comment, error)
	Create(ctx context.Context, c *comment.Comment) error
}

type Service struct {
	repo CommentRepository
}

func NewService(repo CommentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByCampaign(ctx context.Context, campaignID string) ([]comment.Comment, error) {
	return s.repo.ListByCampaign(ctx, campaignID)
}

func (s *Service) Create(ctx context.Context, u *user.User, campaignID, content string) (*comment.Comment, error) {
	c := &comment.Comment{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		UserID:     u.ID,
		UserName:   u.Name,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
