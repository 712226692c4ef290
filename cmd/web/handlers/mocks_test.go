package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"paymentsvc/internal/payment"
	"paymentsvc/internal/webhook"
)

type PaymentServiceMock struct {
	mock.Mock
}

func (m *PaymentServiceMock) Create(ctx context.Context, req payment.CreateRequest) (*payment.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *PaymentServiceMock) GetByID(ctx context.Context, id string) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *PaymentServiceMock) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type WebhookServiceMock struct {
	mock.Mock
}

func (m *WebhookServiceMock) Handle(ctx context.Context, payload map[string]any) (webhook.Result, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(webhook.Result), args.Error(1)
}
