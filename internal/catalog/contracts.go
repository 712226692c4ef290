package catalog

import "context"

// MethodRepositoryContract defines payment method storage responsibility.
type MethodRepositoryContract interface {
	Create(ctx context.Context, m *PaymentMethod) error
	Update(ctx context.Context, m *PaymentMethod) error
	Delete(ctx context.Context, id string, hard bool) error
	GetByID(ctx context.Context, id string) (*PaymentMethod, error)
	GetByName(ctx context.Context, name string) (*PaymentMethod, error)
	List(ctx context.Context) ([]*PaymentMethod, error)
}

// StatusRepositoryContract defines payment status storage responsibility.
type StatusRepositoryContract interface {
	Create(ctx context.Context, s *PaymentStatus) error
	Update(ctx context.Context, s *PaymentStatus) error
	Delete(ctx context.Context, id string, hard bool) error
	GetByID(ctx context.Context, id string) (*PaymentStatus, error)
	GetByName(ctx context.Context, name string) (*PaymentStatus, error)
	List(ctx context.Context) ([]*PaymentStatus, error)
}
