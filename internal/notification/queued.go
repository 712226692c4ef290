package notification

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"paymentsvc/kit/observability"
)

// QueuedNotifier accepts the notification by enqueueing a durable task and
// returns immediately. Delivery itself happens in the worker process with its
// own retry budget.
type QueuedNotifier struct {
	enqueuer Enqueuer
	maxRetry int
	timeout  time.Duration
	metrics  *observability.Metrics
	logger   *observability.Logger
}

func NewQueuedNotifier(enqueuer Enqueuer, maxRetry int, timeout time.Duration, metrics *observability.Metrics, logger *observability.Logger) *QueuedNotifier {
	if maxRetry < 0 {
		maxRetry = 0
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &QueuedNotifier{enqueuer: enqueuer, maxRetry: maxRetry, timeout: timeout, metrics: metrics, logger: logger}
}

func (n *QueuedNotifier) Notify(ctx context.Context, url string, env Envelope) error {
	task, err := NewTask(url, env)
	if err != nil {
		return err
	}
	info, err := n.enqueuer.EnqueueContext(ctx, task,
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(n.maxRetry),
		asynq.Timeout(n.timeout),
	)
	if err != nil {
		n.logger.Error("enqueue notification task", "url", url, "error", err)
		return err
	}
	n.metrics.NotificationsQueuedAdd(1)
	n.logger.Info("notification task enqueued", "task_id", info.ID, "url", url, "payment_id", env.PaymentID)
	return nil
}
