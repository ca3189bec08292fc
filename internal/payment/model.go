package payment

import "time"

// Transaction statuses. A transaction starts as initiated and advances
// exactly once, when the status endpoint observes a terminal provider
// state.
const (
	StatusInitiated = "initiated"
	StatusPaid      = "paid"
)

type Transaction struct {
	ID            string            `json:"id"`
	SessionID     string            `json:"session_id"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	CampaignID    string            `json:"campaign_id"`
	UserID        string            `json:"user_id"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	PaymentStatus string            `json:"payment_status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Pledge records a completed contribution linking user, campaign and
// amount. Written only when a transaction transitions to paid.
type Pledge struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaign_id"`
	UserID        string    `json:"user_id"`
	Amount        float64   `json:"amount"`
	SessionID     string    `json:"session_id,omitempty"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}
