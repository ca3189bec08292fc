package campaign

import "time"

const (
	StatusActive    = "active"
	StatusDraft     = "draft"
	StatusCompleted = "completed"
)

type RewardTier struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type Campaign struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	GoalAmount   float64      `json:"goal_amount"`
	RaisedAmount float64      `json:"raised_amount"`
	CreatorID    string       `json:"creator_id"`
	CreatorName  string       `json:"creator_name,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	Status       string       `json:"status"`
	BackersCount int          `json:"backers_count"`
	DurationDays int          `json:"duration_days"`
	Tags         []string     `json:"tags"`
	RewardTiers  []RewardTier `json:"reward_tiers"`
	CreatedAt    time.Time    `json:"created_at"`
}

// EditableBy reports whether u may mutate the campaign: owner or admin.
func (c *Campaign) EditableBy(userID string, isAdmin bool) bool {
	return c.CreatorID == userID || isAdmin
}
