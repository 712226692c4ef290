package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paymentsvc/kit/db"
)

type PGStatusRepository struct {
	pool *pgxpool.Pool
}

func NewPGStatusRepository(pool *pgxpool.Pool) *PGStatusRepository {
	return &PGStatusRepository{pool: pool}
}

func (r *PGStatusRepository) Create(ctx context.Context, s *PaymentStatus) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payment_statuses (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Name, s.Description, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return errors.Join(db.ErrInternal, err)
	}
	return nil
}

func (r *PGStatusRepository) Update(ctx context.Context, s *PaymentStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE payment_statuses SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND inactivated_at IS NULL`,
		s.ID, s.Name, s.Description, s.UpdatedAt)
	if err != nil {
		return errors.Join(db.ErrInternal, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *PGStatusRepository) Delete(ctx context.Context, id string, hard bool) error {
	var err error
	var affected int64
	if hard {
		tag, execErr := r.pool.Exec(ctx, `DELETE FROM payment_statuses WHERE id = $1`, id)
		err, affected = execErr, tag.RowsAffected()
	} else {
		tag, execErr := r.pool.Exec(ctx, `
			UPDATE payment_statuses SET inactivated_at = $2, updated_at = $2
			WHERE id = $1 AND inactivated_at IS NULL`, id, time.Now().UTC())
		err, affected = execErr, tag.RowsAffected()
	}
	if err != nil {
		return errors.Join(db.ErrInternal, err)
	}
	if affected == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *PGStatusRepository) GetByID(ctx context.Context, id string) (*PaymentStatus, error) {
	return r.get(ctx, `
		SELECT id, name, description, created_at, updated_at, inactivated_at
		FROM payment_statuses WHERE id = $1`, id)
}

func (r *PGStatusRepository) GetByName(ctx context.Context, name string) (*PaymentStatus, error) {
	return r.get(ctx, `
		SELECT id, name, description, created_at, updated_at, inactivated_at
		FROM payment_statuses WHERE name = $1 AND inactivated_at IS NULL`, name)
}

func (r *PGStatusRepository) get(ctx context.Context, query string, arg any) (*PaymentStatus, error) {
	var s PaymentStatus
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.InactivatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(db.ErrInternal, err)
	}
	return &s, nil
}

func (r *PGStatusRepository) List(ctx context.Context) ([]*PaymentStatus, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at, updated_at, inactivated_at
		FROM payment_statuses WHERE inactivated_at IS NULL ORDER BY name`)
	if err != nil {
		return nil, errors.Join(db.ErrInternal, err)
	}
	defer rows.Close()

	var out []*PaymentStatus
	for rows.Next() {
		var s PaymentStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt, &s.InactivatedAt); err != nil {
			return nil, errors.Join(db.ErrInternal, err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

type InMemoryStatusRepository struct {
	mu   sync.Mutex
	data map[string]*PaymentStatus
}

func NewInMemoryStatusRepository() *InMemoryStatusRepository {
	return &InMemoryStatusRepository{data: make(map[string]*PaymentStatus)}
}

func (r *InMemoryStatusRepository) Create(ctx context.Context, s *PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Name == s.Name && existing.InactivatedAt == nil {
			return db.ErrConflict
		}
	}
	cpy := *s
	r.data[s.ID] = &cpy
	return nil
}

func (r *InMemoryStatusRepository) Update(ctx context.Context, s *PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[s.ID]
	if !ok || existing.InactivatedAt != nil {
		return db.ErrNotFound
	}
	cpy := *s
	r.data[s.ID] = &cpy
	return nil
}

func (r *InMemoryStatusRepository) Delete(ctx context.Context, id string, hard bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[id]
	if !ok {
		return db.ErrNotFound
	}
	if hard {
		delete(r.data, id)
		return nil
	}
	if existing.InactivatedAt != nil {
		return db.ErrNotFound
	}
	now := time.Now().UTC()
	existing.InactivatedAt = &now
	existing.UpdatedAt = now
	return nil
}

func (r *InMemoryStatusRepository) GetByID(ctx context.Context, id string) (*PaymentStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.data[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	cpy := *s
	return &cpy, nil
}

func (r *InMemoryStatusRepository) GetByName(ctx context.Context, name string) (*PaymentStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.data {
		if s.Name == name && s.InactivatedAt == nil {
			cpy := *s
			return &cpy, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *InMemoryStatusRepository) List(ctx context.Context) ([]*PaymentStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*PaymentStatus
	for _, s := range r.data {
		if s.InactivatedAt == nil {
			cpy := *s
			out = append(out, &cpy)
		}
	}
	return out, nil
}
