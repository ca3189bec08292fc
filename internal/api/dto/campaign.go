package dto

type CampaignCreateRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	GoalAmount  float64 `json:"goal_amount" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type RewardTierRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

type CampaignCreateExtendedRequest struct {
	Title        string              `json:"title" validate:"required,max=200"`
	Description  string              `json:"description" validate:"required"`
	Category     string              `json:"category" validate:"required"`
	GoalAmount   float64             `json:"goal_amount" validate:"required,gt=0"`
	DurationDays int                 `json:"duration_days" validate:"omitempty,gt=0"`
	Status       string              `json:"status" validate:"omitempty,oneof=active draft completed"`
	Tags         []string            `json:"tags"`
	RewardTiers  []RewardTierRequest `json:"reward_tiers" validate:"dive"`
	ImageURL     string              `json:"image_url,omitempty"`
}

// CampaignUpdateRequest patches only the fields the client sets.
type CampaignUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	GoalAmount  *float64 `json:"goal_amount,omitempty" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=active draft completed"`
}

type CommentCreateRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}
