package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/soyj0/GroomPay/internal/config"
	"github.com/soyj0/GroomPay/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const breakerName = "tossPaymentService"

// Client wraps the outbound Toss Payments calls with retry-with-backoff and
// a shared circuit breaker. It performs no domain validation: it returns the
// decoded provider payload or a typed failure.
type Client struct {
	http      *http.Client
	baseURL   string
	secretKey string
	strategy  retry.Strategy
	breaker   *CircuitBreaker
	log       logger.Logger
}

func NewClient(cfg config.TossConfig, log logger.Logger) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		strategy: retry.Strategy{
			Attempts: cfg.RetryAttempts,
			Delay:    cfg.RetryDelay,
			Backoff:  cfg.RetryBackoff,
		},
		breaker: NewCircuitBreaker(BreakerSettings{
			Name:             breakerName,
			MinCalls:         cfg.BreakerMinCalls,
			FailureThreshold: cfg.BreakerThreshold,
			OpenWait:         cfg.BreakerOpenWait,
			HalfOpenMaxCalls: cfg.BreakerHalfOpen,
		}),
		log: log,
	}
}

// Breaker exposes the circuit state for inspection.
func (c *Client) Breaker() *CircuitBreaker {
	return c.breaker
}

func (c *Client) Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (map[string]any, error) {
	body := map[string]any{
		"paymentKey": paymentKey,
		"orderId":    orderID,
		"amount":     amount,
	}

	res, err := c.call(ctx, c.baseURL+"/v1/payments/confirm", body)
	if err != nil {
		return nil, c.fallback(ctx, "confirm", paymentKey, err)
	}

	return res, nil
}

func (c *Client) Cancel(ctx context.Context, paymentKey, cancelReason string) (map[string]any, error) {
	url := c.baseURL + "/v1/payments/" + paymentKey + "/cancel"
	body := map[string]any{"cancelReason": cancelReason}

	res, err := c.call(ctx, url, body)
	if err != nil {
		return nil, c.fallback(ctx, "cancel", paymentKey, err)
	}

	return res, nil
}

// call runs the retried request under the breaker: an open circuit fails
// fast without touching the network, and one breaker outcome covers the
// whole retry envelope.
func (c *Client) call(ctx context.Context, url string, body map[string]any) (map[string]any, error) {
	var result map[string]any

	err := c.breaker.Execute(func() error {
		return retry.Do(func() error {
			res, err := c.post(ctx, url, body)
			if err != nil {
				return err
			}
			result = res
			return nil
		}, c.strategy)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) (map[string]any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.secretKey, "")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("toss request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("toss responded %d: %s", resp.StatusCode, string(snippet))
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return result, nil
}

// fallback never swallows a failure: it logs the call context and surfaces
// the typed gateway error.
func (c *Client) fallback(ctx context.Context, operation, paymentKey string, err error) error {
	c.log.LogAttrs(ctx, logger.ErrorLevel, "payment gateway call failed",
		logger.String("operation", operation),
		logger.String("payment_key", paymentKey),
		logger.String("breaker", c.breaker.Name()),
		logger.String("breaker_state", c.breaker.State().String()),
		logger.String("error", err.Error()),
	)

	return fmt.Errorf("%s %s: %w", operation, paymentKey, domain.ErrPaymentGateway)
}
