package kaspi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Invoice is what the payment provider hands back for a new order: a QR
// token and the URL the customer scans to pay.
type Invoice struct {
	Token      string `json:"token"`
	PaymentURL string `json:"payment_url"`
}

type invoiceResponse struct {
	Token      string `json:"token"`
	PaymentURL string `json:"payment_url"`
	Error      *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// Client talks to the Kaspi QR invoice API. Without an API key it runs in
// mock mode and fabricates tokens, which keeps local development working
// with no merchant account.
type Client struct {
	apiURL     string
	apiKey     string
	merchantID string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(apiURL, apiKey, merchantID string, log *zap.Logger) *Client {
	if apiURL == "" {
		apiURL = "https://api.kaspi.kz"
	}
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		merchantID: merchantID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

func NewClientFromEnv(log *zap.Logger) *Client {
	return NewClient(
		os.Getenv("KASPI_API_URL"),
		os.Getenv("KASPI_API_KEY"),
		os.Getenv("KASPI_MERCHANT_ID"),
		log,
	)
}

// CreateInvoice registers a payment for an order and returns the QR token
// and payment URL.
func (c *Client) CreateInvoice(ctx context.Context, orderID uint, amount float64) (Invoice, error) {
	if c.apiKey == "" {
		token := fmt.Sprintf("kaspi_%s", uuid.NewString())
		c.log.Info("kaspi mock invoice created",
			zap.Uint("order_id", orderID), zap.String("token", token))
		return Invoice{Token: token, PaymentURL: "https://kaspi.kz/pay/" + token}, nil
	}

	payload := map[string]interface{}{
		"merchant_id": c.merchantID,
		"order_id":    fmt.Sprintf("%d", orderID),
		"amount":      amount,
		"currency":    "KZT",
		"description": fmt.Sprintf("Order #%d at Social Coffee", orderID),
	}

	body, err := c.post(ctx, c.apiURL+"/invoices", payload)
	if err != nil {
		return Invoice{}, err
	}

	var resp invoiceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Invoice{}, fmt.Errorf("failed to parse kaspi response: %w", err)
	}
	if resp.Error != nil {
		return Invoice{}, fmt.Errorf("kaspi error: %s", resp.Error.Message)
	}
	if resp.PaymentURL == "" {
		return Invoice{}, fmt.Errorf("kaspi returned empty payment URL")
	}

	return Invoice{Token: resp.Token, PaymentURL: resp.PaymentURL}, nil
}

// CheckStatus asks the provider for the payment state of a token. Any
// provider failure degrades to "pending" so polling simply tries again.
func (c *Client) CheckStatus(ctx context.Context, token string) string {
	if c.apiKey == "" {
		return "pending"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/invoices/%s/status", c.apiURL, token), nil)
	if err != nil {
		return "pending"
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("kaspi status check failed", zap.Error(err))
		return "pending"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("kaspi status check rejected", zap.Int("status", resp.StatusCode))
		return "pending"
	}

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil || status.Status == "" {
		return "pending"
	}
	return status.Status
}

func (c *Client) post(ctx context.Context, url string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach kaspi: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kaspi API error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}
