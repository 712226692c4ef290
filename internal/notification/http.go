package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"paymentsvc/kit/observability"
)

const userAgent = "Payment-Microservice/1.0"

// HTTPNotifier delivers the notification synchronously with bounded retries
// and a fixed inter-attempt delay. Exhausting the policy surfaces the last
// error joined with ErrDeliveryExhausted.
type HTTPNotifier struct {
	client *http.Client
	policy RetryPolicy
	logger *observability.Logger
}

func NewHTTPNotifier(timeout time.Duration, policy RetryPolicy, logger *observability.Logger) *HTTPNotifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPNotifier{
		client: &http.Client{Timeout: timeout},
		policy: policy,
		logger: logger,
	}
}

func (n *HTTPNotifier) Notify(ctx context.Context, url string, env Envelope) error {
	var lastErr error
	attempts := n.policy.attempts()
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			n.logger.Info("retrying notification", "url", url, "attempt", attempt+1)
			select {
			case <-ctx.Done():
				return errors.Join(ErrDeliveryExhausted, ctx.Err())
			case <-time.After(n.policy.Wait(attempt - 1)):
			}
		}
		if lastErr = postEnvelope(ctx, n.client, url, env); lastErr == nil {
			n.logger.Info("notification delivered", "url", url, "payment_id", env.PaymentID)
			return nil
		}
		n.logger.Warn("notification attempt failed", "url", url, "attempt", attempt+1, "error", lastErr)
	}
	return errors.Join(ErrDeliveryExhausted, lastErr)
}

func postEnvelope(ctx context.Context, client *http.Client, url string, env Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}
