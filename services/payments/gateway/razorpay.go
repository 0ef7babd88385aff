package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
)

// RazorpayClient is an HTTP client for the Razorpay orders API
type RazorpayClient struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewRazorpayClient creates a new Razorpay client
func NewRazorpayClient(cfg models.RazorpayConfig) *RazorpayClient {
	return &RazorpayClient{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// razorpayError mirrors the gateway's error envelope
type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder creates an order carrying the ledger id as its receipt
func (c *RazorpayClient) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*models.RazorpayOrder, error) {
	payload := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	var order models.RazorpayOrder
	if err := c.do(req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// FetchOrder fetches the authoritative order status by order id
func (c *RazorpayClient) FetchOrder(ctx context.Context, orderID string) (*models.RazorpayOrder, error) {
	endpoint := fmt.Sprintf("%s/orders/%s", c.baseURL, url.PathEscape(orderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build order fetch request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)

	var order models.RazorpayOrder
	if err := c.do(req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *RazorpayClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("razorpay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr razorpayError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Description != "" {
			return fmt.Errorf("razorpay: %s (status %d)", apiErr.Error.Description, resp.StatusCode)
		}
		return fmt.Errorf("razorpay: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode razorpay response: %w", err)
	}

	return nil
}
