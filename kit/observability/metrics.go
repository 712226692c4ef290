package observability

import "sync/atomic"

type Metrics struct {
	PaymentsCreated     atomic.Int64
	WebhooksProcessed   atomic.Int64
	WebhooksPassthrough atomic.Int64
	WebhooksRejected    atomic.Int64
	NotificationsSent   atomic.Int64
	NotificationsFailed atomic.Int64
	NotificationsQueued atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) PaymentsCreatedAdd(n int64) {
	m.PaymentsCreated.Add(n)
}

func (m *Metrics) WebhooksProcessedAdd(n int64) {
	m.WebhooksProcessed.Add(n)
}

func (m *Metrics) WebhooksPassthroughAdd(n int64) {
	m.WebhooksPassthrough.Add(n)
}

func (m *Metrics) WebhooksRejectedAdd(n int64) {
	m.WebhooksRejected.Add(n)
}

func (m *Metrics) NotificationsSentAdd(n int64) {
	m.NotificationsSent.Add(n)
}

func (m *Metrics) NotificationsFailedAdd(n int64) {
	m.NotificationsFailed.Add(n)
}

func (m *Metrics) NotificationsQueuedAdd(n int64) {
	m.NotificationsQueued.Add(n)
}
