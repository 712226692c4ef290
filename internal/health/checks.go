package health

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabasePing reports whether the connection pool can reach Postgres.
func DatabasePing(pool *pgxpool.Pool) CheckFunc {
	return func(ctx context.Context) error {
		if pool == nil {
			return nil
		}
		return pool.Ping(ctx)
	}
}
