package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStripe(t *testing.T, handler http.HandlerFunc) *StripeClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewStripeClient("sk_test_123")
	c.baseURL = srv.URL
	return c
}

func TestStripeCreateSession(t *testing.T) {
	var gotForm url.Values
	var gotAuth string
	client := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		json.NewEncoder(w).Encode(CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/cs_1", Status: "open"})
	})

	session, err := client.CreateSession(context.Background(), CheckoutParams{
		Name:        "Back Campaign: Solar Lantern",
		Description: "Supporting Solar Lantern",
		Currency:    "usd",
		AmountCents: 1000,
		SuccessURL:  "https://app.test/ok",
		CancelURL:   "https://app.test/cancel",
		Metadata:    map[string]string{"campaign_id": "c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)

	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, "payment", gotForm.Get("mode"))
	assert.Equal(t, "usd", gotForm.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "1000", gotForm.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "Back Campaign: Solar Lantern", gotForm.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "c1", gotForm.Get("metadata[campaign_id]"))
	assert.Equal(t, "https://app.test/ok", gotForm.Get("success_url"))
}

func TestStripeGetSession(t *testing.T) {
	var gotPath string
	client := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(CheckoutSession{
			ID: "cs_1", Status: "complete", PaymentStatus: "paid", AmountTotal: 1000, Currency: "usd",
		})
	})

	session, err := client.GetSession(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, "/v1/checkout/sessions/cs_1", gotPath)
	assert.Equal(t, "paid", session.PaymentStatus)
	assert.Equal(t, int64(1000), session.AmountTotal)
}

func TestStripeErrorStatus(t *testing.T) {
	client := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"No such session"}}`, http.StatusNotFound)
	})

	_, err := client.GetSession(context.Background(), "cs_missing")
	assert.Error(t, err)
}
