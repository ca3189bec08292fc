package ai

import "time"

// Analysis is a stored success prediction for a campaign.
type Analysis struct {
	ID                 string    `json:"id"`
	CampaignID         string    `json:"campaign_id"`
	SuccessProbability float64   `json:"success_probability"`
	AnalysisText       string    `json:"analysis_text"`
	CreatedAt          time.Time `json:"created_at"`
}

// ChatMessage is one user turn plus the model's reply, keyed by a chat
// session id independent of auth sessions.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
