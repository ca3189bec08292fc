package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"campaigniq/internal/metrics"
)

const stripeBaseURL = "https://api.stripe.com"

// CheckoutSession is the slice of the provider's checkout session the
// platform cares about.
type CheckoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

type CheckoutParams struct {
	Name        string
	Description string
	Currency    string
	// AmountCents is the unit amount in the currency's minor unit.
	AmountCents int64
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// StripeClient is a form-encoded REST client for the payment provider's
// checkout API.
type StripeClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewStripeClient(apiKey string) *StripeClient {
	return &StripeClient{
		apiKey:  apiKey,
		baseURL: stripeBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *StripeClient) CreateSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", p.Name)
	form.Set("line_items[0][price_data][product_data][description]", p.Description)
	for k, v := range p.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	return c.do(ctx, http.MethodPost, "/v1/checkout/sessions", "create_session", form)
}

func (c *StripeClient) GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	return c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), "get_session", nil)
}

func (c *StripeClient) do(ctx context.Context, method, path, endpoint string, form url.Values) (*CheckoutSession, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("stripe: creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.PaymentRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PaymentRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("stripe: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.PaymentRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("stripe: reading response: %w", err)
	}

	metrics.PaymentRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe: status %d: %s", resp.StatusCode, respBody)
	}

	var session CheckoutSession
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("stripe: decoding response: %w", err)
	}
	return &session, nil
}
