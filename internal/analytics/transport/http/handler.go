package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaigniq/internal/analytics/service"
	"campaigniq/pkg/httperr"
	"campaigniq/pkg/middleware"
)

type Handler struct {
	analytics *service.Service
}

func NewHandler(analytics *service.Service) *Handler {
	return &Handler{analytics: analytics}
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	overview, err := h.analytics.Overview(r.Context(), u)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) MonteCarlo(w http.ResponseWriter, r *http.Request) {
	result, err := h.analytics.MonteCarlo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) CompetitorAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.analytics.CompetitorAnalysis(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	recommendations, err := h.analytics.StrategicRecommendations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendations)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
