package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaigniq/internal/ai/service"
	"campaigniq/internal/api/dto"
	"campaigniq/internal/campaign"
	"campaigniq/internal/store"
	"campaigniq/pkg/httperr"
	"campaigniq/pkg/middleware"
)

type Handler struct {
	ai *service.Service
}

func NewHandler(ai *service.Service) *Handler {
	return &Handler{ai: ai}
}

// Chat is the only AI endpoint open to anonymous callers.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	u, _ := middleware.UserFrom(r.Context())
	result, err := h.ai.Chat(r.Context(), u, req.SessionID, req.Message)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) OptimizeTitle(w http.ResponseWriter, r *http.Request) {
	var req dto.OptimizeTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	titles := h.ai.OptimizeTitle(r.Context(), req.Title, req.Description, req.Category)
	writeJSON(w, http.StatusOK, map[string]any{"titles": titles})
}

func (h *Handler) EnhanceDescription(w http.ResponseWriter, r *http.Request) {
	var req dto.EnhanceDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	enhanced, err := h.ai.EnhanceDescription(r.Context(), req.Title, req.Description, req.Category, req.GoalAmount)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"enhanced_description": enhanced})
}

func (h *Handler) PredictSuccess(w http.ResponseWriter, r *http.Request) {
	var req dto.SuccessPredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	tiers := make([]campaign.RewardTier, 0, len(req.RewardTiers))
	for _, t := range req.RewardTiers {
		tiers = append(tiers, campaign.RewardTier{Amount: t.Amount, Description: t.Description})
	}

	prediction := h.ai.PredictSuccess(r.Context(), service.PredictionParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		GoalAmount:  req.GoalAmount,
		RewardTiers: tiers,
	})
	writeJSON(w, http.StatusOK, prediction)
}

func (h *Handler) MarketingStrategy(w http.ResponseWriter, r *http.Request) {
	var req dto.MarketingStrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	strategy := h.ai.MarketingStrategy(r.Context(), service.StrategyParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		GoalAmount:  req.GoalAmount,
	})
	writeJSON(w, http.StatusOK, strategy)
}

// CampaignAnalysis serves the stored success verdict for a campaign, or a
// pending placeholder when the analysis has not landed yet.
func (h *Handler) CampaignAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.ai.CampaignAnalysis(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]any{
				"success_probability": 75.0,
				"analysis_text":       "Analysis pending",
			})
			return
		}
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
