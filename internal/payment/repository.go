package payment

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"paymentsvc/internal/catalog"
	"paymentsvc/kit/db"
)

type PGRepository struct {
	pool *pgxpool.Pool
}

func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const qPaymentSelect = `
	SELECT p.id, p.amount::text, p.external_reference, p.qr_code, p.transaction_id,
	       p.notification_url, p.client_notified, p.created_at, p.updated_at, p.inactivated_at,
	       m.id, m.name, m.description,
	       s.id, s.name, s.description
	FROM payments p
	JOIN payment_methods m ON m.id = p.method_id
	JOIN payment_statuses s ON s.id = p.status_id`

func (r *PGRepository) Create(ctx context.Context, p *Payment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (id, amount, external_reference, qr_code, transaction_id,
			notification_url, client_notified, method_id, status_id, created_at, updated_at)
		VALUES ($1, $2::numeric, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Amount.String(), p.ExternalReference, p.QRCode, p.TransactionID,
		p.NotificationURL, p.ClientNotified, p.Method.ID, p.Status.ID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return errors.Join(db.ErrInternal, err)
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, p *Payment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE payments SET qr_code = $2, transaction_id = $3, notification_url = $4,
			client_notified = $5, status_id = $6, updated_at = $7
		WHERE id = $1`,
		p.ID, p.QRCode, p.TransactionID, p.NotificationURL,
		p.ClientNotified, p.Status.ID, p.UpdatedAt)
	if err != nil {
		return errors.Join(db.ErrInternal, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*Payment, error) {
	return r.get(ctx, qPaymentSelect+` WHERE p.id = $1`, id)
}

func (r *PGRepository) GetByReference(ctx context.Context, externalReference string) (*Payment, error) {
	return r.get(ctx, qPaymentSelect+` WHERE p.external_reference = $1`, externalReference)
}

func (r *PGRepository) GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error) {
	return r.get(ctx, qPaymentSelect+` WHERE p.transaction_id = $1`, transactionID)
}

func (r *PGRepository) get(ctx context.Context, query string, arg any) (*Payment, error) {
	var (
		p      Payment
		amount string
		method catalog.PaymentMethod
		status catalog.PaymentStatus
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &amount, &p.ExternalReference, &p.QRCode, &p.TransactionID,
		&p.NotificationURL, &p.ClientNotified, &p.CreatedAt, &p.UpdatedAt, &p.InactivatedAt,
		&method.ID, &method.Name, &method.Description,
		&status.ID, &status.Name, &status.Description,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(db.ErrInternal, err)
	}
	p.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, errors.Join(db.ErrInternal, err)
	}
	p.Method = &method
	p.Status = &status
	return &p, nil
}

type InMemoryRepository struct {
	mu   sync.Mutex
	data map[string]*Payment
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string]*Payment)}
}

func (r *InMemoryRepository) Create(ctx context.Context, p *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.ExternalReference == p.ExternalReference {
			return db.ErrConflict
		}
	}
	cpy := *p
	r.data[p.ID] = &cpy
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, p *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[p.ID]; !ok {
		return db.ErrNotFound
	}
	cpy := *p
	r.data[p.ID] = &cpy
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.data[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	cpy := *p
	return &cpy, nil
}

func (r *InMemoryRepository) GetByReference(ctx context.Context, externalReference string) (*Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.data {
		if p.ExternalReference == externalReference {
			cpy := *p
			return &cpy, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *InMemoryRepository) GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.data {
		if p.TransactionID == transactionID {
			cpy := *p
			return &cpy, nil
		}
	}
	return nil, db.ErrNotFound
}
