package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Request struct {
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	CardToken         string          `json:"card_token,omitempty"`
	AuthorizationCode string          `json:"authorization_code,omitempty"`
	Reference         string          `json:"reference,omitempty"`
}

type Response struct {
	AuthorizationCode string `json:"authorization_code"`
	ReferenceID       string `json:"reference_id"`
	Message           string `json:"message,omitempty"`
}

// Client talks to the card payment gateway over JSON. Declines map to
// ErrPaymentDeclined and timeouts to ErrGatewayTimeout.
type Client struct {
	logger  *slog.Logger
	baseURL string
	http    *http.Client
}

func NewClient(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		logger:  logger.With(slog.String("gateway", "card")),
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Authorize(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return c.call(ctx, "/authorizations", req)
}

func (c *Client) Capture(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return c.call(ctx, "/captures", req)
}

func (c *Client) ReverseAuthorization(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return c.call(ctx, "/reversals", req)
}

func (c *Client) Refund(ctx context.Context, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	return c.call(ctx, "/refunds", req)
}

func (c *Client) call(ctx context.Context, path string, req entities.PaymentRequest) (entities.TransactionResponse, error) {
	body, err := json.Marshal(Request{
		Amount:            req.Amount,
		Currency:          req.Currency,
		CardToken:         req.CardToken,
		AuthorizationCode: req.AuthorizationCode,
		Reference:         req.Reference,
	})
	if err != nil {
		return entities.TransactionResponse{}, fmt.Errorf("failed to encode gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return entities.TransactionResponse{}, fmt.Errorf("failed to build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return entities.TransactionResponse{}, fmt.Errorf("%s after %s: %w", path, time.Since(start), entities.ErrGatewayTimeout)
		}
		return entities.TransactionResponse{}, fmt.Errorf("failed to call gateway: %w", err)
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && resp.StatusCode == http.StatusOK {
		return entities.TransactionResponse{}, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity:
		return entities.TransactionResponse{}, fmt.Errorf("%s: %w", out.Message, entities.ErrPaymentDeclined)
	case resp.StatusCode == http.StatusGatewayTimeout:
		return entities.TransactionResponse{}, entities.ErrGatewayTimeout
	default:
		c.logger.ErrorContext(ctx, "unexpected gateway response", slog.String("path", path), slog.Int("status", resp.StatusCode))
		return entities.TransactionResponse{}, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	return entities.TransactionResponse{
		AuthorizationCode: out.AuthorizationCode,
		ReferenceID:       out.ReferenceID,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
