package notification

import (
	"context"

	"paymentsvc/kit/observability"
)

type NamedNotifier struct {
	Name     string
	Notifier Notifier
}

// HybridNotifier tries an ordered list of strategies and stops at the first
// one that accepts the notification. A failing strategy is logged and
// skipped. With no strategies, or all of them failing, it reports
// ErrDeliveryExhausted instead of panicking.
type HybridNotifier struct {
	strategies []NamedNotifier
	logger     *observability.Logger
}

func NewHybridNotifier(logger *observability.Logger, strategies ...NamedNotifier) *HybridNotifier {
	return &HybridNotifier{strategies: strategies, logger: logger}
}

func (n *HybridNotifier) Notify(ctx context.Context, url string, env Envelope) error {
	for _, s := range n.strategies {
		n.logger.Info("trying notification strategy", "strategy", s.Name, "url", url)
		if err := s.Notifier.Notify(ctx, url, env); err != nil {
			n.logger.Warn("notification strategy failed", "strategy", s.Name, "error", err)
			continue
		}
		n.logger.Info("notification accepted", "strategy", s.Name, "payment_id", env.PaymentID)
		return nil
	}
	n.logger.Error("all notification strategies failed", "url", url, "payment_id", env.PaymentID)
	return ErrDeliveryExhausted
}
