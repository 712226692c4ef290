package payment

import (
	"context"

	"paymentsvc/internal/catalog"
	"paymentsvc/kit/mercadopago"
)

// RepositoryContract define payment repository responsibility.
type RepositoryContract interface {
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	GetByReference(ctx context.Context, externalReference string) (*Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error)
}

// ProviderGatewayContract define the payment provider responsibility.
type ProviderGatewayContract interface {
	InitiatePayment(ctx context.Context, req mercadopago.OrderRequest) (*mercadopago.OrderResponse, error)
	VerifyPayment(ctx context.Context, payload map[string]any) (mercadopago.VerifyResult, error)
	StatusMap(external string) (catalog.StatusName, error)
}

// MethodLookupContract define method resolution responsibility.
type MethodLookupContract interface {
	GetByName(ctx context.Context, name string) (*catalog.PaymentMethod, error)
}

// StatusLookupContract define status resolution responsibility.
type StatusLookupContract interface {
	GetByName(ctx context.Context, name string) (*catalog.PaymentStatus, error)
}

// ServiceContract define payment service responsibility.
type ServiceContract interface {
	Create(ctx context.Context, req CreateRequest) (*Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error)
}
