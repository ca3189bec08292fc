package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"campaigniq/internal/ai"
	"campaigniq/internal/campaign"
	"campaigniq/internal/user"
	"campaigniq/pkg/httperr"
)

// Generator is the prompt-in, text-out surface of the generative model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AnalysisRepository interface {
	Create(ctx context.Context, a *ai.Analysis) error
	GetByCampaign(ctx context.Context, campaignID string) (*ai.Analysis, error)
}

type ChatRepository interface {
	ListBySession(ctx context.Context, sessionID string, limit int) ([]ai.ChatMessage, error)
	Create(ctx context.Context, m *ai.ChatMessage) error
}

type Service struct {
	gen      Generator
	analyses AnalysisRepository
	chats    ChatRepository
	log      *slog.Logger
}

func NewService(gen Generator, analyses AnalysisRepository, chats ChatRepository, log *slog.Logger) *Service {
	return &Service{gen: gen, analyses: analyses, chats: chats, log: log}
}

const chatSystemPrompt = "You are a helpful AI assistant for a crowdfunding platform. Help users with campaign-related queries, funding advice, and platform navigation.\n"

type ChatResult struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// Chat answers one message within a chat session, feeding the last few
// turns back to the model as context. Works for anonymous callers too.
func (s *Service) Chat(ctx context.Context, u *user.User, sessionID, message string) (*ChatResult, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history, err := s.chats.ListBySession(ctx, sessionID, 50)
	if err != nil {
		s.log.Warn("loading chat history failed", "session_id", sessionID, "err", err)
		history = nil
	}
	if len(history) > 5 {
		history = history[len(history)-5:]
	}

	var b strings.Builder
	b.WriteString(chatSystemPrompt)
	for _, msg := range history {
		b.WriteString("User: " + msg.Message + "\n")
		if msg.Response != "" {
			b.WriteString("Assistant: " + msg.Response + "\n")
		}
	}
	b.WriteString("User: " + message)

	response, err := s.gen.Generate(ctx, b.String())
	if err != nil {
		s.log.Error("chat generation failed", "err", err)
		return nil, httperr.Service("AI service error")
	}
	response = strings.TrimSpace(response)

	chatMsg := &ai.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Message:   message,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	if u != nil {
		chatMsg.UserID = u.ID
	}
	if err := s.chats.Create(ctx, chatMsg); err != nil {
		s.log.Warn("storing chat message failed", "err", err)
	}

	return &ChatResult{Response: response, SessionID: sessionID}, nil
}

// AnalyzeSuccess asks the model for a bare success percentage and stores
// the verdict alongside the campaign. Unparseable output scores 75.
func (s *Service) AnalyzeSuccess(ctx context.Context, c *campaign.Campaign) error {
	prompt := fmt.Sprintf(`Analyze this crowdfunding campaign and predict its success probability (0-100%%):
Title: %s
Category: %s
Goal: $%.0f
Description: %s

Respond with ONLY a number between 0-100 representing the success probability percentage.`,
		c.Title, c.Category, c.GoalAmount, c.Description)

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	response = strings.TrimSpace(response)

	probability := 75.0
	if fields := strings.Fields(response); len(fields) > 0 {
		if v, err := strconv.ParseFloat(strings.Trim(fields[0], "%"), 64); err == nil {
			probability = min(100, max(0, v))
		}
	}

	return s.analyses.Create(ctx, &ai.Analysis{
		ID:                 uuid.NewString(),
		CampaignID:         c.ID,
		SuccessProbability: probability,
		AnalysisText:       response,
		CreatedAt:          time.Now().UTC(),
	})
}

// CampaignAnalysis returns the stored verdict for a campaign, or nil when
// none exists yet.
func (s *Service) CampaignAnalysis(ctx context.Context, campaignID string) (*ai.Analysis, error) {
	a, err := s.analyses.GetByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// OptimizeTitle asks for five alternative titles as a JSON array. Any
// parse failure yields template-built fallbacks.
func (s *Service) OptimizeTitle(ctx context.Context, title, description, category string) []string {
	prompt := fmt.Sprintf(`You are an expert at creating compelling crowdfunding campaign titles.

Current Title: %s
Category: %s
Description: %s

Generate 5 alternative campaign titles that are:
- Compelling and attention-grabbing
- Clear about what the campaign offers
- Optimized for backers in the %s category
- Under 80 characters each

Return ONLY a JSON array of 5 titles, nothing else. Format:
["Title 1", "Title 2", "Title 3", "Title 4", "Title 5"]`,
		title, category, description, category)

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("title optimization failed", "err", err)
		return fallbackTitles(title)
	}

	raw, err := extractJSON(response)
	if err != nil {
		return fallbackTitles(title)
	}
	var titles []string
	if err := json.Unmarshal(raw, &titles); err != nil || len(titles) == 0 {
		return fallbackTitles(title)
	}
	return titles
}

// EnhanceDescription rewrites a campaign description. Unlike the JSON
// endpoints this one surfaces downstream failure instead of falling back.
func (s *Service) EnhanceDescription(ctx context.Context, title, description, category string, goalAmount float64) (string, error) {
	prompt := fmt.Sprintf(`You are an expert at writing persuasive crowdfunding campaign descriptions.

Campaign Title: %s
Category: %s
Goal Amount: $%.0f
Current Description: %s

Improve this description to make it more compelling and persuasive. The enhanced description should:
- Start with a strong hook that captures attention
- Clearly explain the problem or opportunity
- Describe the solution and its impact
- Include social proof or credibility elements
- End with a clear call-to-action
- Be well-structured with paragraphs
- Be between 200-400 words

Return ONLY the enhanced description text, no additional commentary.`,
		title, category, goalAmount, description)

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("description enhancement failed", "err", err)
		return "", httperr.Service("AI service error")
	}

	enhanced := strings.TrimSpace(response)
	enhanced = strings.ReplaceAll(enhanced, "**", "")
	enhanced = strings.ReplaceAll(enhanced, "*", "")
	return enhanced, nil
}

type SuccessPrediction struct {
	SuccessPercentage float64  `json:"success_percentage" validate:"gte=0,lte=100"`
	ConfidenceLevel   string   `json:"confidence_level" validate:"required"`
	Analysis          string   `json:"analysis" validate:"required"`
	Recommendations   []string `json:"recommendations" validate:"required,min=1"`
}

type PredictionParams struct {
	Title       string
	Description string
	Category    string
	GoalAmount  float64
	RewardTiers []campaign.RewardTier
}

// PredictSuccess returns a structured prediction, parsed strictly from
// the model output or, in the single fallback branch, derived from the
// goal and reward tier shape.
func (s *Service) PredictSuccess(ctx context.Context, p PredictionParams) *SuccessPrediction {
	var tiersText string
	if len(p.RewardTiers) > 0 {
		lines := make([]string, 0, len(p.RewardTiers))
		for _, t := range p.RewardTiers {
			lines = append(lines, fmt.Sprintf("- $%.0f: %s", t.Amount, t.Description))
		}
		tiersText = "Reward Tiers:\n" + strings.Join(lines, "\n")
	}

	prompt := fmt.Sprintf(`You are an AI expert at predicting crowdfunding campaign success.

Campaign Details:
Title: %s
Category: %s
Goal: $%.0f
Description: %s
%s

Analyze this campaign and provide a success prediction in JSON format:
{
    "success_percentage": <number between 0-100>,
    "confidence_level": "<High/Medium/Low>",
    "analysis": "<2-3 sentence analysis of why this percentage>",
    "recommendations": [
        "<recommendation 1>",
        "<recommendation 2>",
        "<recommendation 3>",
        "<recommendation 4>",
        "<recommendation 5>"
    ]
}

Be realistic and specific in your analysis.`,
		p.Title, p.Category, p.GoalAmount, p.Description, tiersText)

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("success prediction failed", "err", err)
		return fallbackPrediction(p)
	}

	var prediction SuccessPrediction
	if err := DecodeStrict(response, &prediction); err != nil {
		s.log.Warn("success prediction output rejected", "err", err)
		return fallbackPrediction(p)
	}
	return &prediction
}

type TargetAudience struct {
	Primary   string `json:"primary" validate:"required"`
	Secondary string `json:"secondary"`
}

type MarketingChannel struct {
	Name     string `json:"name" validate:"required"`
	Strategy string `json:"strategy" validate:"required"`
	Priority string `json:"priority"`
}

type MarketingPhase struct {
	Phase    string   `json:"phase" validate:"required"`
	Duration string   `json:"duration"`
	Actions  []string `json:"actions"`
}

type MarketingStrategy struct {
	Overview         string             `json:"overview" validate:"required"`
	TargetAudience   TargetAudience     `json:"target_audience"`
	Channels         []MarketingChannel `json:"channels" validate:"required,min=1,dive"`
	Timeline         []MarketingPhase   `json:"timeline" validate:"required,min=1,dive"`
	KeyMessages      []string           `json:"key_messages" validate:"required,min=1"`
	BudgetAllocation map[string]string  `json:"budget_allocation" validate:"required"`
}

type StrategyParams struct {
	Title       string
	Description string
	Category    string
	GoalAmount  float64
}

func (s *Service) MarketingStrategy(ctx context.Context, p StrategyParams) *MarketingStrategy {
	prompt := fmt.Sprintf(`You are a marketing expert specializing in crowdfunding campaigns.

Campaign Details:
Title: %s
Category: %s
Goal: $%.0f
Description: %s

Create a comprehensive marketing strategy in JSON format with the following structure:
{
    "overview": "<2-3 sentence overview of the marketing approach>",
    "target_audience": {
        "primary": "<description of primary audience>",
        "secondary": "<description of secondary audience>"
    },
    "channels": [
        {
            "name": "<channel name>",
            "strategy": "<specific strategy for this channel>",
            "priority": "<High/Medium/Low>"
        }
    ],
    "timeline": [
        {
            "phase": "<phase name>",
            "duration": "<timeframe>",
            "actions": ["<action 1>", "<action 2>"]
        }
    ],
    "key_messages": ["<message 1>", "<message 2>", "<message 3>"],
    "budget_allocation": {
        "social_media": "<percentage>",
        "content_creation": "<percentage>",
        "influencer_partnerships": "<percentage>",
        "paid_advertising": "<percentage>"
    }
}

Provide 3-4 marketing channels and 3 timeline phases.`,
		p.Title, p.Category, p.GoalAmount, p.Description)

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("marketing strategy failed", "err", err)
		return fallbackStrategy(p)
	}

	var strategy MarketingStrategy
	if err := DecodeStrict(response, &strategy); err != nil {
		s.log.Warn("marketing strategy output rejected", "err", err)
		return fallbackStrategy(p)
	}
	return &strategy
}
