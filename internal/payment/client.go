package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"plantstore/internal/domain"
)

// Client talks to the hosted payment provider. The provider runs the
// interactive widget on its side; this client only creates the intent the
// widget is opened with and verifies the reference it hands back.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *log.Logger
}

func New(baseURL, keyID, keySecret string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type intentRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type intentResponse struct {
	ID string `json:"id"`
}

type paymentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateIntent registers a payment of the given amount (minor currency
// units) with the provider and returns the intent ID the widget needs.
func (c *Client) CreateIntent(ctx context.Context, amountCents int64, currency, receipt string, notes map[string]string) (string, error) {
	body, err := json.Marshal(intentRequest{
		Amount:   amountCents,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("payment: create intent error=%v", err)
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Printf("payment: create intent status=%d body=%s", resp.StatusCode, raw)
		return "", fmt.Errorf("%w: status %d", domain.ErrPaymentUnavailable, resp.StatusCode)
	}

	var out intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrPaymentUnavailable, err)
	}
	c.logger.Printf("payment: intent created id=%s amount=%d %s", out.ID, amountCents, currency)
	return out.ID, nil
}

// Verify checks a payment reference with the provider. A reference that is
// not captured or paid maps to ErrPaymentFailed.
func (c *Client) Verify(ctx context.Context, paymentRef string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+paymentRef, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("payment: verify ref=%s error=%v", paymentRef, err)
		return fmt.Errorf("%w: %v", domain.ErrPaymentUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("%w: unknown payment %s", domain.ErrPaymentFailed, paymentRef)
	default:
		return fmt.Errorf("%w: status %d", domain.ErrPaymentUnavailable, resp.StatusCode)
	}

	var out paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrPaymentUnavailable, err)
	}
	if out.Status != "captured" && out.Status != "paid" {
		c.logger.Printf("payment: verify ref=%s status=%s", paymentRef, out.Status)
		return fmt.Errorf("%w: status %s", domain.ErrPaymentFailed, out.Status)
	}
	return nil
}
