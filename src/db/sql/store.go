package db

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps the pgx pool. Handlers depend on the narrow slices of it
// they need, so tests can swap in mocks.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}
