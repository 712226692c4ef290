package notification

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"
)

// ErrDeliveryExhausted means every configured delivery attempt failed. It is
// logged at the notification boundary and never propagated to webhook callers.
var ErrDeliveryExhausted = errors.New("notification: delivery attempts exhausted")

// Notifier define notification delivery responsibility. A nil error means the
// notification was accepted for delivery, which for queued strategies does not
// guarantee the client was actually reached.
type Notifier interface {
	Notify(ctx context.Context, url string, env Envelope) error
}

// Enqueuer define task enqueue responsibility (satisfied by *asynq.Client).
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
