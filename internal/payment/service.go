package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"paymentsvc/internal/catalog"
	"paymentsvc/kit/db"
	"paymentsvc/kit/observability"
)

type Service struct {
	repository RepositoryContract
	methods    MethodLookupContract
	statuses   StatusLookupContract
	gateway    ProviderGatewayContract
	metrics    *observability.Metrics
	logger     *observability.Logger

	callbackURL string
}

func NewService(repo RepositoryContract, methods MethodLookupContract, statuses StatusLookupContract, gateway ProviderGatewayContract, metrics *observability.Metrics, logger *observability.Logger, publicBaseURL string) *Service {
	return &Service{
		repository:  repo,
		methods:     methods,
		statuses:    statuses,
		gateway:     gateway,
		metrics:     metrics,
		logger:      logger,
		callbackURL: CallbackURL(publicBaseURL),
	}
}

// Create runs the payment creation flow: resolve the method, build a pending
// payment, obtain qr code and transaction id from the provider, then persist.
// The provider is called before anything is stored, so a provider failure
// leaves no partial record behind.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Payment, error) {
	if err := ValidateCreateRequest(req); err != nil {
		s.logger.Error("create payment: invalid request", "method", req.Method, "error", err)
		return nil, errors.Join(db.ErrInvalid, err)
	}

	method, err := s.methods.GetByName(ctx, req.Method)
	if err != nil {
		s.logger.Error("create payment: method lookup", "method", req.Method, "error", err)
		return nil, err
	}

	pending, err := s.statuses.GetByName(ctx, catalog.StatusPending.String())
	if err != nil {
		s.logger.Error("create payment: pending status lookup", "error", err)
		return nil, errors.Join(db.ErrInternal, fmt.Errorf("status taxonomy not seeded: %w", err))
	}

	externalReference := "pay-" + uuid.NewString()
	p, err := New(uuid.NewString(), req.TotalAmount, externalReference, req.NotificationURL, method, pending)
	if err != nil {
		return nil, errors.Join(db.ErrInvalid, err)
	}

	order := ToOrderRequest(req, externalReference, s.callbackURL)
	if _, err := p.InitiatePayment(ctx, order, s.gateway); err != nil {
		s.logger.Error("create payment: provider initiate", "external_reference", externalReference, "error", err)
		return nil, err
	}

	if err := s.repository.Create(ctx, p); err != nil {
		s.logger.Error("create payment: persist", "payment_id", p.ID, "error", err)
		return nil, err
	}

	s.metrics.PaymentsCreatedAdd(1)
	s.logger.Info("payment created", "payment_id", p.ID, "external_reference", externalReference, "transaction_id", p.TransactionID)
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Payment, error) {
	p, err := s.repository.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get payment by id", "payment_id", id, "error", err)
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error) {
	p, err := s.repository.GetByTransactionID(ctx, transactionID)
	if err != nil {
		s.logger.Error("get payment by transaction id", "transaction_id", transactionID, "error", err)
		return nil, err
	}
	return p, nil
}
