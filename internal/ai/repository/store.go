package repository

import (
	"context"

	"campaigniq/internal/ai"
	"campaigniq/internal/store"
)

const (
	analysesTable = "ai_analyses"
	chatTable     = "chat_messages"
)

type StoreAnalysisRepository struct {
	store *store.Client
}

func NewStoreAnalysisRepository(s *store.Client) *StoreAnalysisRepository {
	return &StoreAnalysisRepository{store: s}
}

func (r *StoreAnalysisRepository) Create(ctx context.Context, a *ai.Analysis) error {
	return r.store.Insert(ctx, analysesTable, a)
}

func (r *StoreAnalysisRepository) GetByCampaign(ctx context.Context, campaignID string) (*ai.Analysis, error) {
	var a ai.Analysis
	err := r.store.SelectOne(ctx, analysesTable, store.Where().Eq("campaign_id", campaignID), &a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

type StoreChatRepository struct {
	store *store.Client
}

func NewStoreChatRepository(s *store.Client) *StoreChatRepository {
	return &StoreChatRepository{store: s}
}

func (r *StoreChatRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]ai.ChatMessage, error) {
	filter := store.Where().Eq("session_id", sessionID).Limit(limit)

	var messages []ai.ChatMessage
	if err := r.store.Select(ctx, chatTable, filter, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *StoreChatRepository) Create(ctx context.Context, m *ai.ChatMessage) error {
	return r.store.Insert(ctx, chatTable, m)
}
