package webhook

import (
	"context"

	"paymentsvc/internal/catalog"
	"paymentsvc/internal/notification"
	"paymentsvc/internal/payment"
	"paymentsvc/kit/mercadopago"
)

// GatewayContract define the provider verification responsibility.
type GatewayContract interface {
	VerifyPayment(ctx context.Context, payload map[string]any) (mercadopago.VerifyResult, error)
	StatusMap(external string) (catalog.StatusName, error)
}

// PaymentRepositoryContract define the payment lookup/persist responsibility.
type PaymentRepositoryContract interface {
	GetByReference(ctx context.Context, externalReference string) (*payment.Payment, error)
	Update(ctx context.Context, p *payment.Payment) error
}

// StatusLookupContract define stored status resolution responsibility.
type StatusLookupContract interface {
	GetByName(ctx context.Context, name string) (*catalog.PaymentStatus, error)
}

// NotifierContract define client notification responsibility.
type NotifierContract interface {
	Notify(ctx context.Context, url string, env notification.Envelope) error
}

// ServiceContract define webhook reconciliation responsibility.
type ServiceContract interface {
	Handle(ctx context.Context, payload map[string]any) (Result, error)
}
