package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paymentsvc/internal/catalog"
	"paymentsvc/internal/notification"
	"paymentsvc/kit/db"
	"paymentsvc/kit/mercadopago"
	"paymentsvc/kit/observability"
)

type Result struct {
	Message string
}

// Service reconciles provider callbacks against stored payments: verify the
// event, map the provider status, overwrite the payment status, and notify
// the client exactly once on completion.
type Service struct {
	gateway  GatewayContract
	payments PaymentRepositoryContract
	statuses StatusLookupContract
	notifier NotifierContract
	metrics  *observability.Metrics
	logger   *observability.Logger
}

func NewService(gateway GatewayContract, payments PaymentRepositoryContract, statuses StatusLookupContract, notifier NotifierContract, metrics *observability.Metrics, logger *observability.Logger) *Service {
	return &Service{
		gateway:  gateway,
		payments: payments,
		statuses: statuses,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle processes one inbound provider callback. Re-delivering the same
// payload is safe: the status write converges and the client_notified guard
// keeps the notification from repeating.
func (s *Service) Handle(ctx context.Context, payload map[string]any) (Result, error) {
	verified, err := s.gateway.VerifyPayment(ctx, payload)
	if err != nil {
		s.metrics.WebhooksRejectedAdd(1)
		s.logger.Error("webhook: verify payment", "error", err)
		if errors.Is(err, mercadopago.ErrBadPayload) {
			return Result{}, errors.Join(db.ErrInvalid, err)
		}
		return Result{}, errors.Join(db.ErrInternal, err)
	}

	if verified.Passthrough {
		s.metrics.WebhooksPassthroughAdd(1)
		s.logger.Info("webhook: informational event, no action", "message", verified.Message)
		return Result{Message: verified.Message}, nil
	}

	details := verified.Details
	mapped, err := s.gateway.StatusMap(details.Status)
	if err != nil {
		s.metrics.WebhooksRejectedAdd(1)
		s.logger.Error("webhook: status map", "status", details.Status, "error", err)
		return Result{}, errors.Join(db.ErrInvalid, err)
	}

	p, err := s.payments.GetByReference(ctx, details.ExternalReference)
	if err != nil {
		s.metrics.WebhooksRejectedAdd(1)
		s.logger.Error("webhook: payment lookup", "external_reference", details.ExternalReference, "error", err)
		if db.IsNotFound(err) {
			return Result{}, errors.Join(db.ErrInvalid, fmt.Errorf("payment with reference %s not found", details.ExternalReference))
		}
		return Result{}, errors.Join(db.ErrInternal, err)
	}

	status, err := s.statuses.GetByName(ctx, mapped.String())
	if err != nil {
		s.metrics.WebhooksRejectedAdd(1)
		s.logger.Error("webhook: stored status lookup", "status", mapped.String(), "error", err)
		if db.IsNotFound(err) {
			return Result{}, errors.Join(db.ErrInvalid, fmt.Errorf("payment status %s not found", mapped))
		}
		return Result{}, errors.Join(db.ErrInternal, err)
	}

	p.UpdateStatus(status)
	if err := s.payments.Update(ctx, p); err != nil {
		s.logger.Error("webhook: persist status", "payment_id", p.ID, "error", err)
		return Result{}, errors.Join(db.ErrInternal, err)
	}
	s.metrics.WebhooksProcessedAdd(1)
	s.logger.Info("webhook: payment status updated", "payment_id", p.ID, "status", status.Name)

	// Notification guard: completed status, a notification target, a client
	// not yet notified, and a configured notifier. This is what keeps webhook
	// replays from notifying twice.
	if status.Name == catalog.StatusCompleted.String() && p.NotificationURL != "" && !p.ClientNotified && s.notifier != nil {
		env := notification.NewEnvelope(p.ID, p.ExternalReference, p.Amount.InexactFloat64(), status.Name, p.TransactionID, time.Now().UTC())
		if err := s.notifier.Notify(ctx, p.NotificationURL, env); err != nil {
			// Contained: a lost notification must not fail the webhook or
			// roll back the status transition.
			s.metrics.NotificationsFailedAdd(1)
			s.logger.Error("webhook: client notification failed", "payment_id", p.ID, "url", p.NotificationURL, "error", err)
			return Result{Message: "webhook processed, notification failed"}, nil
		}
		s.metrics.NotificationsSentAdd(1)
		if err := p.MarkClientNotified(); err != nil {
			s.logger.Error("webhook: mark client notified", "payment_id", p.ID, "error", err)
			return Result{Message: "webhook processed"}, nil
		}
		if err := s.payments.Update(ctx, p); err != nil {
			s.logger.Error("webhook: persist client notified", "payment_id", p.ID, "error", err)
		}
	}

	return Result{Message: "webhook processed"}, nil
}
