package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustAsh123/shopalot/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListAddresses(ctx context.Context, userID string) ([]domain.Address, error) {
	const q = `
SELECT addresses
FROM users
WHERE id = $1
`
	var addresses []domain.Address
	err := r.pool.QueryRow(ctx, q, userID).Scan(&addresses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Address{}, nil
		}
		return nil, &domain.StorageError{Op: "customer.addresses", Err: err}
	}
	if addresses == nil {
		addresses = []domain.Address{}
	}
	return addresses, nil
}

func (r *postgresRepo) PutAddresses(ctx context.Context, userID string, addresses []domain.Address) error {
	const q = `
INSERT INTO users (id, addresses)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET addresses = EXCLUDED.addresses
`
	if addresses == nil {
		addresses = []domain.Address{}
	}
	if _, err := r.pool.Exec(ctx, q, userID, addresses); err != nil {
		return &domain.StorageError{Op: "customer.addresses", Err: err}
	}
	return nil
}
