package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postWebhook(t *testing.T, h *Handler, payload, signature string) map[string]string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", strings.NewReader(payload))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	h.Webhook(w, req)

	// The webhook always acknowledges with 200 so the provider stops
	// redelivering; the body carries the verdict.
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWebhookNoSecretConfigured(t *testing.T) {
	h := NewHandler(nil, "", slog.New(slog.DiscardHandler))

	body := postWebhook(t, h, `{"type":"checkout.session.completed"}`, "")
	assert.Equal(t, "success", body["status"])
}

func TestWebhookValidSignature(t *testing.T) {
	payload := `{"type":"checkout.session.completed"}`
	mac := hmac.New(sha256.New, []byte("whsec_test"))
	mac.Write([]byte("1700000000." + payload))
	sig := "t=1700000000,v1=" + hex.EncodeToString(mac.Sum(nil))

	h := NewHandler(nil, "whsec_test", slog.New(slog.DiscardHandler))

	body := postWebhook(t, h, payload, sig)
	assert.Equal(t, "success", body["status"])
}

func TestWebhookBadSignature(t *testing.T) {
	h := NewHandler(nil, "whsec_test", slog.New(slog.DiscardHandler))

	body := postWebhook(t, h, `{"type":"checkout.session.completed"}`, "t=1700000000,v1=deadbeef")
	assert.Equal(t, "error", body["status"])
}
