package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hibiken/asynq"

	"paymentsvc/kit/observability"
)

// TypePaymentNotification is the asynq task type for queued client
// notifications.
const TypePaymentNotification = "notification:payment"

// QueueNotifications is the asynq queue the worker consumes.
const QueueNotifications = "notifications"

type taskPayload struct {
	URL      string   `json:"url"`
	Envelope Envelope `json:"envelope"`
}

func NewTask(url string, env Envelope) (*asynq.Task, error) {
	payload, err := json.Marshal(taskPayload{URL: url, Envelope: env})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentNotification, payload), nil
}

// TaskHandler executes queued notification tasks. A failed attempt returns an
// error so asynq applies the retry policy; a task that exhausts its retries is
// abandoned beyond logging.
type TaskHandler struct {
	client *http.Client
	logger *observability.Logger
}

func NewTaskHandler(timeout time.Duration, logger *observability.Logger) *TaskHandler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TaskHandler{client: &http.Client{Timeout: timeout}, logger: logger}
}

func (h *TaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p taskPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		h.logger.Error("notification task: bad payload", "error", err)
		return errors.Join(asynq.SkipRetry, err)
	}

	h.logger.Info("executing queued notification", "url", p.URL, "payment_id", p.Envelope.PaymentID)
	if err := postEnvelope(ctx, h.client, p.URL, p.Envelope); err != nil {
		h.logger.Warn("queued notification attempt failed", "url", p.URL, "error", err)
		return err
	}
	h.logger.Info("queued notification delivered", "url", p.URL, "payment_id", p.Envelope.PaymentID)
	return nil
}

// ExponentialRetryDelay adapts a RetryPolicy to asynq's delay hook. No jitter.
func ExponentialRetryDelay(policy RetryPolicy) asynq.RetryDelayFunc {
	return func(n int, _ error, _ *asynq.Task) time.Duration {
		return policy.Wait(n)
	}
}
