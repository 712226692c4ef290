package webhook

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paymentsvc/internal/catalog"
	"paymentsvc/internal/notification"
	"paymentsvc/internal/payment"
	"paymentsvc/kit/db"
	"paymentsvc/kit/mercadopago"
	"paymentsvc/kit/observability"
)

func statusRecord(name catalog.StatusName) *catalog.PaymentStatus {
	return &catalog.PaymentStatus{ID: uuid.NewString(), Name: name.String(), Description: name.Description()}
}

func storedPayment(t *testing.T, notificationURL string) *payment.Payment {
	t.Helper()
	p, err := payment.New(uuid.NewString(), decimal.NewFromFloat(99.5), "pay-ref", notificationURL,
		&catalog.PaymentMethod{ID: uuid.NewString(), Name: catalog.MethodQRCode},
		statusRecord(catalog.StatusPending))
	require.NoError(t, err)
	require.NoError(t, p.SetTransactionID("TX1"))
	return p
}

func approvedDetails(reference string) *mercadopago.PaymentDetails {
	return &mercadopago.PaymentDetails{
		ExternalReference: reference,
		Status:            "approved",
		Amount:            99.5,
		TransactionID:     "TX1",
	}
}

func newTestService(gateway GatewayContract, payments PaymentRepositoryContract, statuses StatusLookupContract, notifier NotifierContract) *Service {
	return NewService(gateway, payments, statuses, notifier, observability.NewMetrics(), observability.NewLogger())
}

func TestService_Handle_Passthrough(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"action": "payment.created"}

	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Passthrough: true, Message: "payment.created"}, nil)
	payments := new(PaymentRepositoryMock)
	svc := newTestService(gateway, payments, new(StatusLookupMock), new(NotifierMock))

	res, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	require.Equal(t, "payment.created", res.Message)
	payments.AssertNotCalled(t, "GetByReference")
	payments.AssertNotCalled(t, "Update")
}

func TestService_Handle_BadPayload(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"topic": "payment"}

	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{}, mercadopago.ErrBadPayload)
	svc := newTestService(gateway, new(PaymentRepositoryMock), new(StatusLookupMock), new(NotifierMock))

	_, err := svc.Handle(ctx, payload)

	require.True(t, db.IsInvalid(err))
	require.ErrorIs(t, err, mercadopago.ErrBadPayload)
}

func TestService_Handle_ProviderFetchFailure(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{}, mercadopago.ErrProviderRequest)
	svc := newTestService(gateway, new(PaymentRepositoryMock), new(StatusLookupMock), new(NotifierMock))

	_, err := svc.Handle(ctx, payload)

	require.True(t, db.IsInternal(err))
	require.False(t, db.IsInvalid(err))
}

func TestService_Handle_UnmappedStatusLeavesPaymentUntouched(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	details := approvedDetails("pay-ref")
	details.Status = "in_mediation"

	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Details: details}, nil)
	gateway.On("StatusMap", "in_mediation").Return(catalog.StatusName(""), mercadopago.ErrUnmappedStatus)
	payments := new(PaymentRepositoryMock)
	svc := newTestService(gateway, payments, new(StatusLookupMock), new(NotifierMock))

	_, err := svc.Handle(ctx, payload)

	require.True(t, db.IsInvalid(err))
	require.ErrorIs(t, err, mercadopago.ErrUnmappedStatus)
	payments.AssertNotCalled(t, "Update")
}

func TestService_Handle_PaymentNotFound(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Details: approvedDetails("pay-ghost")}, nil)
	gateway.On("StatusMap", "approved").Return(catalog.StatusCompleted, nil)
	payments := new(PaymentRepositoryMock)
	payments.On("GetByReference", ctx, "pay-ghost").Return(nil, db.ErrNotFound)
	svc := newTestService(gateway, payments, new(StatusLookupMock), new(NotifierMock))

	_, err := svc.Handle(ctx, payload)

	require.True(t, db.IsInvalid(err))
	require.Contains(t, err.Error(), "pay-ghost")
}

func TestService_Handle_StatusRecordMissing(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	p := storedPayment(t, "")
	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Details: approvedDetails(p.ExternalReference)}, nil)
	gateway.On("StatusMap", "approved").Return(catalog.StatusCompleted, nil)
	payments := new(PaymentRepositoryMock)
	payments.On("GetByReference", ctx, p.ExternalReference).Return(p, nil)
	statuses := new(StatusLookupMock)
	statuses.On("GetByName", ctx, catalog.StatusCompleted.String()).Return(nil, db.ErrNotFound)
	svc := newTestService(gateway, payments, statuses, new(NotifierMock))

	_, err := svc.Handle(ctx, payload)

	require.True(t, db.IsInvalid(err))
	payments.AssertNotCalled(t, "Update")
}

func TestService_Handle_CompletedFlowNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	p := storedPayment(t, "https://client.example/cb")
	completed := statusRecord(catalog.StatusCompleted)

	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Details: approvedDetails(p.ExternalReference)}, nil)
	gateway.On("StatusMap", "approved").Return(catalog.StatusCompleted, nil)
	payments := new(PaymentRepositoryMock)
	payments.On("GetByReference", ctx, p.ExternalReference).Return(p, nil)
	payments.On("Update", ctx, p).Return(nil)
	statuses := new(StatusLookupMock)
	statuses.On("GetByName", ctx, catalog.StatusCompleted.String()).Return(completed, nil)

	var gotEnv notification.Envelope
	notifier := new(NotifierMock)
	notifier.On("Notify", ctx, "https://client.example/cb", mock.AnythingOfType("notification.Envelope")).
		Run(func(args mock.Arguments) { gotEnv = args.Get(2).(notification.Envelope) }).
		Return(nil).
		Once()

	svc := newTestService(gateway, payments, statuses, notifier)

	res, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	require.Equal(t, "webhook processed", res.Message)
	require.True(t, p.IsCompleted())
	require.True(t, p.ClientNotified)
	payments.AssertNumberOfCalls(t, "Update", 2)
	notifier.AssertExpectations(t)

	require.Equal(t, notification.EventPaymentCompleted, gotEnv.Event)
	require.Equal(t, p.ID, gotEnv.PaymentID)
	require.Equal(t, p.ExternalReference, gotEnv.ExternalReference)
	require.Equal(t, 99.5, gotEnv.Amount)
	require.Equal(t, catalog.StatusCompleted.String(), gotEnv.Status)
	require.Equal(t, "TX1", gotEnv.TransactionID)
}

// Replaying the same provider callback converges: the second delivery rewrites
// the same status and the notified guard keeps the client from hearing twice.
func TestService_Handle_DuplicateDeliveryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	p := storedPayment(t, "https://client.example/cb")
	repo := payment.NewInMemoryRepository()
	require.NoError(t, repo.Create(ctx, p))

	completed := statusRecord(catalog.StatusCompleted)
	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Details: approvedDetails(p.ExternalReference)}, nil)
	gateway.On("StatusMap", "approved").Return(catalog.StatusCompleted, nil)
	statuses := new(StatusLookupMock)
	statuses.On("GetByName", ctx, catalog.StatusCompleted.String()).Return(completed, nil)
	notifier := new(NotifierMock)
	notifier.On("Notify", ctx, "https://client.example/cb", mock.AnythingOfType("notification.Envelope")).Return(nil)

	svc := newTestService(gateway, repo, statuses, notifier)

	_, err := svc.Handle(ctx, payload)
	require.NoError(t, err)
	_, err = svc.Handle(ctx, payload)
	require.NoError(t, err)

	stored, err := repo.GetByReference(ctx, p.ExternalReference)
	require.NoError(t, err)
	require.True(t, stored.IsCompleted())
	require.True(t, stored.ClientNotified)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestService_Handle_NotificationFailureIsContained(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	p := storedPayment(t, "https://client.example/cb")
	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Details: approvedDetails(p.ExternalReference)}, nil)
	gateway.On("StatusMap", "approved").Return(catalog.StatusCompleted, nil)
	payments := new(PaymentRepositoryMock)
	payments.On("GetByReference", ctx, p.ExternalReference).Return(p, nil)
	payments.On("Update", ctx, p).Return(nil)
	statuses := new(StatusLookupMock)
	statuses.On("GetByName", ctx, catalog.StatusCompleted.String()).Return(statusRecord(catalog.StatusCompleted), nil)
	notifier := new(NotifierMock)
	notifier.On("Notify", ctx, "https://client.example/cb", mock.AnythingOfType("notification.Envelope")).
		Return(errors.Join(notification.ErrDeliveryExhausted, errors.New("connection refused")))

	svc := newTestService(gateway, payments, statuses, notifier)

	res, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	require.Equal(t, "webhook processed, notification failed", res.Message)
	require.True(t, p.IsCompleted())
	require.False(t, p.ClientNotified)
	payments.AssertNumberOfCalls(t, "Update", 1)
}

func TestService_Handle_NotificationGuard(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	var tests = []struct {
		name     string
		mapped   catalog.StatusName
		external string
		url      string
		notified bool
	}{
		{name: "non-completed status never notifies", mapped: catalog.StatusCancelled, external: "cancelled", url: "https://client.example/cb"},
		{name: "no notification url configured", mapped: catalog.StatusCompleted, external: "approved", url: ""},
		{name: "client already notified", mapped: catalog.StatusCompleted, external: "approved", url: "https://client.example/cb", notified: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := storedPayment(t, "pre-set")
			p.NotificationURL = tt.url
			if tt.notified {
				require.NoError(t, p.MarkClientNotified())
			}

			details := approvedDetails(p.ExternalReference)
			details.Status = tt.external

			gateway := new(GatewayMock)
			gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Details: details}, nil)
			gateway.On("StatusMap", tt.external).Return(tt.mapped, nil)
			payments := new(PaymentRepositoryMock)
			payments.On("GetByReference", ctx, p.ExternalReference).Return(p, nil)
			payments.On("Update", ctx, p).Return(nil)
			statuses := new(StatusLookupMock)
			statuses.On("GetByName", ctx, tt.mapped.String()).Return(statusRecord(tt.mapped), nil)
			notifier := new(NotifierMock)

			svc := newTestService(gateway, payments, statuses, notifier)

			_, err := svc.Handle(ctx, payload)
			require.NoError(t, err)
			notifier.AssertNotCalled(t, "Notify")
		})
	}
}

func TestService_Handle_NilNotifierSkipsNotification(t *testing.T) {
	ctx := context.Background()
	payload := map[string]any{"resource": "payments/1", "topic": "payment"}

	p := storedPayment(t, "https://client.example/cb")
	gateway := new(GatewayMock)
	gateway.On("VerifyPayment", ctx, payload).Return(mercadopago.VerifyResult{Details: approvedDetails(p.ExternalReference)}, nil)
	gateway.On("StatusMap", "approved").Return(catalog.StatusCompleted, nil)
	payments := new(PaymentRepositoryMock)
	payments.On("GetByReference", ctx, p.ExternalReference).Return(p, nil)
	payments.On("Update", ctx, p).Return(nil)
	statuses := new(StatusLookupMock)
	statuses.On("GetByName", ctx, catalog.StatusCompleted.String()).Return(statusRecord(catalog.StatusCompleted), nil)

	svc := newTestService(gateway, payments, statuses, nil)

	res, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	require.Equal(t, "webhook processed", res.Message)
	require.False(t, p.ClientNotified)
}
