package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaigniq/internal/campaign"
	"campaigniq/internal/payment"
	"campaigniq/internal/store"
	"campaigniq/internal/user"
	"campaigniq/pkg/httperr"
)

// PledgePackages are the fixed contribution amounts offered at checkout.
var PledgePackages = map[string]float64{
	"small":  10.0,
	"medium": 50.0,
	"large":  100.0,
}

type CheckoutProvider interface {
	CreateSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *payment.Transaction) error
	GetBySessionID(ctx context.Context, sessionID string) (*payment.Transaction, error)
	UpdateStatus(ctx context.Context, sessionID, status string) error
}

type PledgeRepository interface {
	Create(ctx context.Context, p *payment.Pledge) error
}

// CampaignStore is the slice of the campaign repository the payment flow
// needs for reconciliation.
type CampaignStore interface {
	GetByID(ctx context.Context, id string) (*campaign.Campaign, error)
	UpdateFunding(ctx context.Context, id string, raised float64, backers int) error
}

type Service struct {
	provider     CheckoutProvider
	transactions TransactionRepository
	pledges      PledgeRepository
	campaigns    CampaignStore
	log          *slog.Logger
}

func NewService(provider CheckoutProvider, transactions TransactionRepository, pledges PledgeRepository, campaigns CampaignStore, log *slog.Logger) *Service {
	return &Service{
		provider:     provider,
		transactions: transactions,
		pledges:      pledges,
		campaigns:    campaigns,
		log:          log,
	}
}

type CheckoutResult struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CreateCheckout opens a provider checkout session for the small pledge
// package and records the transaction as initiated.
func (s *Service) CreateCheckout(ctx context.Context, u *user.User, campaignID, originURL string) (*CheckoutResult, error) {
	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.NotFound("Campaign not found")
		}
		return nil, err
	}

	amount := PledgePackages["small"]
	successURL := fmt.Sprintf("%s/campaign/%s?session_id={CHECKOUT_SESSION_ID}", originURL, campaignID)
	cancelURL := fmt.Sprintf("%s/campaign/%s", originURL, campaignID)

	session, err := s.provider.CreateSession(ctx, CheckoutParams{
		Name:        "Back Campaign: " + c.Title,
		Description: "Supporting " + c.Title,
		Currency:    "usd",
		AmountCents: int64(amount * 100),
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
		Metadata: map[string]string{
			"campaign_id": campaignID,
			"user_id":     u.ID,
		},
	})
	if err != nil {
		s.log.Error("checkout session creation failed", "campaign_id", campaignID, "err", err)
		return nil, httperr.Service("Payment service error")
	}

	tx := &payment.Transaction{
		ID:            uuid.NewString(),
		SessionID:     session.ID,
		Amount:        amount,
		Currency:      "usd",
		CampaignID:    campaignID,
		UserID:        u.ID,
		Metadata:      map[string]string{"campaign_id": campaignID, "user_id": u.ID},
		PaymentStatus: payment.StatusInitiated,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	return &CheckoutResult{URL: session.URL, SessionID: session.ID}, nil
}

type StatusResult struct {
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	AmountTotal   float64 `json:"amount_total"`
	Currency      string  `json:"currency"`
}

// Status polls the provider and advances the local transaction. The
// transition to paid increments the campaign's funding counters and
// writes the pledge record; the two writes are not atomic. A transaction
// already marked paid is never advanced again, which is what makes
// repeated polling safe.
func (s *Service) Status(ctx context.Context, u *user.User, sessionID string) (*StatusResult, error) {
	session, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		s.log.Error("checkout session lookup failed", "session_id", sessionID, "err", err)
		return nil, httperr.Service("Payment service error")
	}

	tx, err := s.transactions.GetBySessionID(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if tx != nil && tx.PaymentStatus != payment.StatusPaid {
		newStatus := session.Status
		if session.PaymentStatus == payment.StatusPaid {
			newStatus = payment.StatusPaid
		}
		if err := s.transactions.UpdateStatus(ctx, sessionID, newStatus); err != nil {
			return nil, err
		}

		if newStatus == payment.StatusPaid {
			if err := s.settle(ctx, u, tx); err != nil {
				return nil, err
			}
		}
	}

	return &StatusResult{
		Status:        session.Status,
		PaymentStatus: session.PaymentStatus,
		AmountTotal:   float64(session.AmountTotal) / 100,
		Currency:      session.Currency,
	}, nil
}

// settle applies the side effects of a paid transaction: bump the
// campaign counters and record the pledge.
func (s *Service) settle(ctx context.Context, u *user.User, tx *payment.Transaction) error {
	c, err := s.campaigns.GetByID(ctx, tx.CampaignID)
	if err == nil {
		err = s.campaigns.UpdateFunding(ctx, tx.CampaignID, c.RaisedAmount+tx.Amount, c.BackersCount+1)
		if err != nil {
			return err
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	return s.pledges.Create(ctx, &payment.Pledge{
		ID:            uuid.NewString(),
		CampaignID:    tx.CampaignID,
		UserID:        u.ID,
		Amount:        tx.Amount,
		SessionID:     tx.SessionID,
		PaymentStatus: payment.StatusPaid,
		CreatedAt:     time.Now().UTC(),
	})
}
