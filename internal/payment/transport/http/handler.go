package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaigniq/internal/api/dto"
	"campaigniq/internal/payment/service"
	"campaigniq/pkg/httperr"
	"campaigniq/pkg/middleware"
)

type Handler struct {
	payments      *service.Service
	webhookSecret string
	log           *slog.Logger
}

func NewHandler(payments *service.Service, webhookSecret string, log *slog.Logger) *Handler {
	return &Handler{payments: payments, webhookSecret: webhookSecret, log: log}
}

func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	var req dto.PledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, "invalid request"))
		return
	}
	if err := dto.Validate.Struct(req); err != nil {
		httperr.Write(w, httperr.New(http.StatusBadRequest, err.Error()))
		return
	}

	result, err := h.payments.CreateCheckout(r.Context(), u, req.CampaignID, req.OriginURL)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.UserFrom(r.Context())

	result, err := h.payments.Status(r.Context(), u, chi.URLParam(r, "session_id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Webhook acknowledges provider events. Reconciliation is poll-driven
// through Status; events are verified when a secret is configured and
// otherwise just logged.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "error", "message": "unreadable payload"})
		return
	}

	sig := r.Header.Get("Stripe-Signature")
	if err := service.VerifyWebhookSignature(payload, sig, h.webhookSecret); err != nil {
		h.log.Warn("webhook signature rejected", "err", err)
		writeJSON(w, http.StatusOK, map[string]string{"status": "error", "message": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
