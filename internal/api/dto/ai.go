package dto

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id,omitempty"`
}

type OptimizeTitleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

type EnhanceDescriptionRequest struct {
	Description string  `json:"description" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	GoalAmount  float64 `json:"goal_amount" validate:"required,gt=0"`
}

type SuccessPredictionRequest struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Category    string              `json:"category" validate:"required"`
	GoalAmount  float64             `json:"goal_amount" validate:"required,gt=0"`
	RewardTiers []RewardTierRequest `json:"reward_tiers" validate:"dive"`
}

type MarketingStrategyRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	GoalAmount  float64 `json:"goal_amount" validate:"required,gt=0"`
}
