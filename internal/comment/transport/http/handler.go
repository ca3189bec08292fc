package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaigniq/internal/api/dto"
	"campaigniq/internal/comment/service"
	"campaigniq/pkg/httperr"
	"campaigniq/pkg/middleware"
)

type Handler struct {
	comments *service.Service
}

func NewHandler(comments *service.Service) *Handler {
	return &Handler{comments: comments}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListByCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	var req dto.CommentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	c, err := h.comments.Create(r.Context(), u, chi.URLParam(r, "id"), req.Content)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
