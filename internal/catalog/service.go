package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"paymentsvc/kit/db"
	"paymentsvc/kit/observability"
)

var ErrInvalidName = errors.New("catalog: name is required")

// Service exposes CRUD over the payment method / status dictionaries.
// hardDelete switches Delete between physical removal and inactivation.
type Service struct {
	methods    MethodRepositoryContract
	statuses   StatusRepositoryContract
	logger     *observability.Logger
	hardDelete bool
}

func NewService(methods MethodRepositoryContract, statuses StatusRepositoryContract, logger *observability.Logger, hardDelete bool) *Service {
	return &Service{methods: methods, statuses: statuses, logger: logger, hardDelete: hardDelete}
}

func (s *Service) CreateMethod(ctx context.Context, name, description string) (*PaymentMethod, error) {
	if name == "" {
		return nil, errors.Join(db.ErrInvalid, ErrInvalidName)
	}
	now := time.Now().UTC()
	m := &PaymentMethod{ID: uuid.NewString(), Name: name, Description: description, CreatedAt: now, UpdatedAt: now}
	if err := s.methods.Create(ctx, m); err != nil {
		s.logger.Error("create payment method", "name", name, "error", err)
		return nil, err
	}
	return m, nil
}

func (s *Service) UpdateMethod(ctx context.Context, id, name, description string) (*PaymentMethod, error) {
	if name == "" {
		return nil, errors.Join(db.ErrInvalid, ErrInvalidName)
	}
	m, err := s.methods.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Name = name
	m.Description = description
	m.UpdatedAt = time.Now().UTC()
	if err := s.methods.Update(ctx, m); err != nil {
		s.logger.Error("update payment method", "id", id, "error", err)
		return nil, err
	}
	return m, nil
}

func (s *Service) DeleteMethod(ctx context.Context, id string) error {
	return s.methods.Delete(ctx, id, s.hardDelete)
}

func (s *Service) GetMethodByID(ctx context.Context, id string) (*PaymentMethod, error) {
	return s.methods.GetByID(ctx, id)
}

func (s *Service) GetMethodByName(ctx context.Context, name string) (*PaymentMethod, error) {
	return s.methods.GetByName(ctx, name)
}

func (s *Service) ListMethods(ctx context.Context) ([]*PaymentMethod, error) {
	return s.methods.List(ctx)
}

func (s *Service) CreateStatus(ctx context.Context, name, description string) (*PaymentStatus, error) {
	if name == "" {
		return nil, errors.Join(db.ErrInvalid, ErrInvalidName)
	}
	now := time.Now().UTC()
	st := &PaymentStatus{ID: uuid.NewString(), Name: name, Description: description, CreatedAt: now, UpdatedAt: now}
	if err := s.statuses.Create(ctx, st); err != nil {
		s.logger.Error("create payment status", "name", name, "error", err)
		return nil, err
	}
	return st, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, name, description string) (*PaymentStatus, error) {
	if name == "" {
		return nil, errors.Join(db.ErrInvalid, ErrInvalidName)
	}
	st, err := s.statuses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	st.Name = name
	st.Description = description
	st.UpdatedAt = time.Now().UTC()
	if err := s.statuses.Update(ctx, st); err != nil {
		s.logger.Error("update payment status", "id", id, "error", err)
		return nil, err
	}
	return st, nil
}

func (s *Service) DeleteStatus(ctx context.Context, id string) error {
	return s.statuses.Delete(ctx, id, s.hardDelete)
}

func (s *Service) GetStatusByID(ctx context.Context, id string) (*PaymentStatus, error) {
	return s.statuses.GetByID(ctx, id)
}

func (s *Service) GetStatusByName(ctx context.Context, name string) (*PaymentStatus, error) {
	return s.statuses.GetByName(ctx, name)
}

func (s *Service) ListStatuses(ctx context.Context) ([]*PaymentStatus, error) {
	return s.statuses.List(ctx)
}

// Seed installs the fixed status taxonomy and the qr_code method when absent.
// The webhook flow resolves mapped statuses by name, so the stored dictionary
// must cover every StatusName.
func (s *Service) Seed(ctx context.Context) error {
	for _, name := range AllStatusNames() {
		if _, err := s.statuses.GetByName(ctx, name.String()); err == nil {
			continue
		} else if !db.IsNotFound(err) {
			return err
		}
		if _, err := s.CreateStatus(ctx, name.String(), name.Description()); err != nil && !db.IsConflict(err) {
			return err
		}
	}

	if _, err := s.methods.GetByName(ctx, MethodQRCode); err == nil {
		return nil
	} else if !db.IsNotFound(err) {
		return err
	}
	_, err := s.CreateMethod(ctx, MethodQRCode, "Payment via QR Code.")
	if err != nil && !db.IsConflict(err) {
		return err
	}
	return nil
}
