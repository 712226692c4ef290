package metrics

import "paymentsvc/kit/observability"

type Service struct {
	m *observability.Metrics
}

func NewService(m *observability.Metrics) *Service {
	return &Service{m: m}
}

func (s *Service) Snapshot() map[string]int64 {
	if s.m == nil {
		return map[string]int64{}
	}
	return map[string]int64{
		"payments_created":     s.m.PaymentsCreated.Load(),
		"webhooks_processed":   s.m.WebhooksProcessed.Load(),
		"webhooks_passthrough": s.m.WebhooksPassthrough.Load(),
		"webhooks_rejected":    s.m.WebhooksRejected.Load(),
		"notifications_sent":   s.m.NotificationsSent.Load(),
		"notifications_failed": s.m.NotificationsFailed.Load(),
		"notifications_queued": s.m.NotificationsQueued.Load(),
	}
}
