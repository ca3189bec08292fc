package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaigniq/internal/api/dto"
	"campaigniq/internal/campaign"
	"campaigniq/internal/campaign/service"
	"campaigniq/pkg/httperr"
	"campaigniq/pkg/middleware"
)

type Handler struct {
	campaigns *service.Service
}

func NewHandler(campaigns *service.Service) *Handler {
	return &Handler{campaigns: campaigns}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.List(r.Context(), r.URL.Query().Get("category"), r.URL.Query().Get("search"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	var req dto.CampaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	c, err := h.campaigns.Create(r.Context(), u, service.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		GoalAmount:  req.GoalAmount,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) CreateExtended(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	var req dto.CampaignCreateExtendedRequest
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

	c, err := h.campaigns.CreateExtended(r.Context(), u, service.CreateExtendedParams{
		CreateParams: service.CreateParams{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			GoalAmount:  req.GoalAmount,
			ImageURL:    req.ImageURL,
		},
		DurationDays: req.DurationDays,
		Status:       req.Status,
		Tags:         req.Tags,
		RewardTiers:  tiers,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	var req dto.CampaignUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	patch := map[string]any{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Category != nil {
		patch["category"] = *req.Category
	}
	if req.GoalAmount != nil {
		patch["goal_amount"] = *req.GoalAmount
	}
	if req.ImageURL != nil {
		patch["image_url"] = *req.ImageURL
	}
	if req.Status != nil {
		patch["status"] = *req.Status
	}

	c, err := h.campaigns.Update(r.Context(), u, chi.URLParam(r, "id"), patch)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	if err := h.campaigns.Delete(r.Context(), u, chi.URLParam(r, "id")); err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Campaign deleted"})
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	campaigns, err := h.campaigns.ListMine(r.Context(), u)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.AdminListAll(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.campaigns.AdminStats(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
