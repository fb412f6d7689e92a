package cart

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

func (r *postgresRepo) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	const q = `
SELECT lines, version, updated_at
FROM carts
WHERE user_id = $1
`
	cart := domain.Cart{UserID: userID}
	err := r.pool.QueryRow(ctx, q, userID).Scan(&cart.Lines, &cart.Version, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "cart.get", Err: err}
	}
	return &cart, nil
}

func (r *postgresRepo) Put(ctx context.Context, cart domain.Cart) (*domain.Cart, error) {
	// Insert-or-overwrite in one statement. The WHERE on the conflict arm
	// is the compare-and-swap: a stale expected version updates nothing
	// and the RETURNING yields no row.
	const q = `
INSERT INTO carts (user_id, lines, version)
VALUES ($1, $2, 1)
ON CONFLICT (user_id) DO UPDATE
SET lines = EXCLUDED.lines,
    version = carts.version + 1,
    updated_at = now()
WHERE carts.version = $3
RETURNING version, updated_at
`
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	err := r.pool.QueryRow(ctx, q, cart.UserID, cart.Lines, cart.Version).
		Scan(&cart.Version, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVersionConflict
		}
		return nil, &domain.StorageError{Op: "cart.put", Err: err}
	}
	return &cart, nil
}
