package webhook

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paymentsvc/internal/catalog"
	"paymentsvc/internal/notification"
	"paymentsvc/internal/payment"
	"paymentsvc/kit/mercadopago"
)

type GatewayMock struct {
	mock.Mock
	GatewayContract
}

func (m *GatewayMock) VerifyPayment(ctx context.Context, payload map[string]any) (mercadopago.VerifyResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(mercadopago.VerifyResult), args.Error(1)
}

func (m *GatewayMock) StatusMap(external string) (catalog.StatusName, error) {
	args := m.Called(external)
	return args.Get(0).(catalog.StatusName), args.Error(1)
}

type PaymentRepositoryMock struct {
	mock.Mock
	PaymentRepositoryContract
}

func (m *PaymentRepositoryMock) GetByReference(ctx context.Context, externalReference string) (*payment.Payment, error) {
	args := m.Called(ctx, externalReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *PaymentRepositoryMock) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
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

type NotifierMock struct {
	mock.Mock
	NotifierContract
}

func (m *NotifierMock) Notify(ctx context.Context, url string, env notification.Envelope) error {
	args := m.Called(ctx, url, env)
	return args.Error(0)
}
