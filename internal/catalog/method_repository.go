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

type PGMethodRepository struct {
	pool *pgxpool.Pool
}

func NewPGMethodRepository(pool *pgxpool.Pool) *PGMethodRepository {
	return &PGMethodRepository{pool: pool}
}

func (r *PGMethodRepository) Create(ctx context.Context, m *PaymentMethod) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payment_methods (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Name, m.Description, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return errors.Join(db.ErrInternal, err)
	}
	return nil
}

func (r *PGMethodRepository) Update(ctx context.Context, m *PaymentMethod) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE payment_methods SET name = $2, description = $3, updated_at = $4
		WHERE id = $1 AND inactivated_at IS NULL`,
		m.ID, m.Name, m.Description, m.UpdatedAt)
	if err != nil {
		return errors.Join(db.ErrInternal, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *PGMethodRepository) Delete(ctx context.Context, id string, hard bool) error {
	var err error
	var affected int64
	if hard {
		tag, execErr := r.pool.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1`, id)
		err, affected = execErr, tag.RowsAffected()
	} else {
		tag, execErr := r.pool.Exec(ctx, `
			UPDATE payment_methods SET inactivated_at = $2, updated_at = $2
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

func (r *PGMethodRepository) GetByID(ctx context.Context, id string) (*PaymentMethod, error) {
	return r.get(ctx, `
		SELECT id, name, description, created_at, updated_at, inactivated_at
		FROM payment_methods WHERE id = $1`, id)
}

func (r *PGMethodRepository) GetByName(ctx context.Context, name string) (*PaymentMethod, error) {
	return r.get(ctx, `
		SELECT id, name, description, created_at, updated_at, inactivated_at
		FROM payment_methods WHERE name = $1 AND inactivated_at IS NULL`, name)
}

func (r *PGMethodRepository) get(ctx context.Context, query string, arg any) (*PaymentMethod, error) {
	var m PaymentMethod
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&m.ID, &m.Name, &m.Description, &m.CreatedAt, &m.UpdatedAt, &m.InactivatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(db.ErrInternal, err)
	}
	return &m, nil
}

func (r *PGMethodRepository) List(ctx context.Context) ([]*PaymentMethod, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at, updated_at, inactivated_at
		FROM payment_methods WHERE inactivated_at IS NULL ORDER BY name`)
	if err != nil {
		return nil, errors.Join(db.ErrInternal, err)
	}
	defer rows.Close()

	var out []*PaymentMethod
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.CreatedAt, &m.UpdatedAt, &m.InactivatedAt); err != nil {
			return nil, errors.Join(db.ErrInternal, err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

type InMemoryMethodRepository struct {
	mu   sync.Mutex
	data map[string]*PaymentMethod
}

func NewInMemoryMethodRepository() *InMemoryMethodRepository {
	return &InMemoryMethodRepository{data: make(map[string]*PaymentMethod)}
}

func (r *InMemoryMethodRepository) Create(ctx context.Context, m *PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Name == m.Name && existing.InactivatedAt == nil {
			return db.ErrConflict
		}
	}
	cpy := *m
	r.data[m.ID] = &cpy
	return nil
}

func (r *InMemoryMethodRepository) Update(ctx context.Context, m *PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[m.ID]
	if !ok || existing.InactivatedAt != nil {
		return db.ErrNotFound
	}
	cpy := *m
	r.data[m.ID] = &cpy
	return nil
}

func (r *InMemoryMethodRepository) Delete(ctx context.Context, id string, hard bool) error {
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

func (r *InMemoryMethodRepository) GetByID(ctx context.Context, id string) (*PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.data[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	cpy := *m
	return &cpy, nil
}

func (r *InMemoryMethodRepository) GetByName(ctx context.Context, name string) (*PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.data {
		if m.Name == name && m.InactivatedAt == nil {
			cpy := *m
			return &cpy, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *InMemoryMethodRepository) List(ctx context.Context) ([]*PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*PaymentMethod
	for _, m := range r.data {
		if m.InactivatedAt == nil {
			cpy := *m
			out = append(out, &cpy)
		}
	}
	return out, nil
}
