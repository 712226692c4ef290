package catalog

import "time"

// MethodQRCode is the only payment method the service accepts today.
const MethodQRCode = "qr_code"

type PaymentMethod struct {
	ID            string
	Name          string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	InactivatedAt *time.Time
}

type PaymentStatus struct {
	ID            string
	Name          string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	InactivatedAt *time.Time
}

func (m *PaymentMethod) Active() bool { return m != nil && m.InactivatedAt == nil }

func (s *PaymentStatus) Active() bool { return s != nil && s.InactivatedAt == nil }
