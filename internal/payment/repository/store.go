package repository

import (
	"context"

	"campaigniq/internal/payment"
	"campaigniq/internal/store"
)

const (
	transactionsTable = "payment_transactions"
	pledgesTable      = "pledges"
)

type StoreTransactionRepository struct {
	store *store.Client
}

func NewStoreTransactionRepository(s *store.Client) *StoreTransactionRepository {
	return &StoreTransactionRepository{store: s}
}

func (r *StoreTransactionRepository) Create(ctx context.Context, t *payment.Transaction) error {
	return r.store.Insert(ctx, transactionsTable, t)
}

func (r *StoreTransactionRepository) GetBySessionID(ctx context.Context, sessionID string) (*payment.Transaction, error) {
	var t payment.Transaction
	err := r.store.SelectOne(ctx, transactionsTable, store.Where().Eq("session_id", sessionID), &t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *StoreTransactionRepository) UpdateStatus(ctx context.Context, sessionID, status string) error {
	return r.store.Update(ctx, transactionsTable,
		store.Where().Eq("session_id", sessionID),
		map[string]any{"payment_status": status})
}

type StorePledgeRepository struct {
	store *store.Client
}

func NewStorePledgeRepository(s *store.Client) *StorePledgeRepository {
	return &StorePledgeRepository{store: s}
}

func (r *StorePledgeRepository) Create(ctx context.Context, p *payment.Pledge) error {
	return r.store.Insert(ctx, pledgesTable, p)
}
