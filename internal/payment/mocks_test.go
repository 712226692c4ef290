package payment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paymentsvc/internal/catalog"
	"paymentsvc/kit/mercadopago"
)

type RepositoryMock struct {
	mock.Mock
	RepositoryContract
}

func (m *RepositoryMock) Create(ctx context.Context, p *Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *RepositoryMock) GetByID(ctx context.Context, id string) (*Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *RepositoryMock) GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

type GatewayMock struct {
	mock.Mock
	ProviderGatewayContract
}

func (m *GatewayMock) InitiatePayment(ctx context.Context, req mercadopago.OrderRequest) (*mercadopago.OrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mercadopago.OrderResponse), args.Error(1)
}

type MethodLookupMock struct {
	mock.Mock
	MethodLookupContract
}

func (m *MethodLookupMock) GetByName(ctx context.Context, name string) (*catalog.PaymentMethod, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PaymentMethod), args.Error(1)
}

type StatusLookupMock struct {
	mock.Mock
	StatusLookupContract
}

func (m *StatusLookupMock) GetByName(ctx context.Context, name string) (*catalog.PaymentStatus, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PaymentStatus), args.Error(1)
}
