package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"paymentsvc/internal/catalog"
	"paymentsvc/kit/mercadopago"
)

var (
	ErrInvalidAmount        = errors.New("payment: amount must be greater than zero")
	ErrBlankQRCode          = errors.New("payment: qr code cannot be empty")
	ErrBlankTransactionID   = errors.New("payment: transaction id cannot be empty")
	ErrBlankNotificationURL = errors.New("payment: notification url cannot be empty")
	ErrAlreadyNotified      = errors.New("payment: client has already been notified")
	ErrNotPending           = errors.New("payment: payment is not pending")
)

// Payment is the aggregate at the center of the service. ExternalReference is
// assigned once at creation and is the correlation key webhooks resolve by.
type Payment struct {
	ID                string
	Amount            decimal.Decimal
	ExternalReference string
	QRCode            string
	TransactionID     string
	NotificationURL   string
	ClientNotified    bool
	Method            *catalog.PaymentMethod
	Status            *catalog.PaymentStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
	InactivatedAt     *time.Time
}

func New(id string, amount decimal.Decimal, externalReference, notificationURL string, method *catalog.PaymentMethod, status *catalog.PaymentStatus) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	now := time.Now().UTC()
	return &Payment{
		ID:                id,
		Amount:            amount,
		ExternalReference: externalReference,
		NotificationURL:   notificationURL,
		Method:            method,
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (p *Payment) SetQRCode(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return ErrBlankQRCode
	}
	p.QRCode = v
	return nil
}

func (p *Payment) SetTransactionID(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return ErrBlankTransactionID
	}
	p.TransactionID = v
	return nil
}

func (p *Payment) SetNotificationURL(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return ErrBlankNotificationURL
	}
	p.NotificationURL = v
	return nil
}

// MarkClientNotified flips the monotonic notified flag. A second call is a
// domain error; the webhook guard should make that unreachable in normal flow.
func (p *Payment) MarkClientNotified() error {
	if p.ClientNotified {
		return ErrAlreadyNotified
	}
	p.ClientNotified = true
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateStatus overwrites the status reference unconditionally. Transition
// legality is the orchestrator's call: the provider feed is treated as ground
// truth, so reverse transitions are accepted here.
func (p *Payment) UpdateStatus(status *catalog.PaymentStatus) {
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
}

// InitiatePayment asks the provider for a QR order and records the returned
// qr code and transaction id. Only a pending payment may be initiated.
func (p *Payment) InitiatePayment(ctx context.Context, req mercadopago.OrderRequest, gateway ProviderGatewayContract) (*mercadopago.OrderResponse, error) {
	if !p.IsPending() {
		return nil, ErrNotPending
	}
	resp, err := gateway.InitiatePayment(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := p.SetQRCode(resp.QRData); err != nil {
		return nil, err
	}
	if err := p.SetTransactionID(resp.InStoreOrderID); err != nil {
		return nil, err
	}
	return resp, nil
}

func (p *Payment) IsPending() bool {
	return p.Status != nil && p.Status.Name == catalog.StatusPending.String()
}

func (p *Payment) IsCompleted() bool {
	return p.Status != nil && p.Status.Name == catalog.StatusCompleted.String()
}

func (p *Payment) IsCancelled() bool {
	return p.Status != nil && p.Status.Name == catalog.StatusCancelled.String()
}
