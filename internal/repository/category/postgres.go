package category

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustAsh123/shopalot/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id::text, name, slug, parent_id::text, created_at
FROM categories
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, &domain.StorageError{Op: "category.list", Err: err}
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.CreatedAt); err != nil {
			return nil, &domain.StorageError{Op: "category.list", Err: err}
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "category.list", Err: err}
	}
	return result, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, in UpsertInput) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, slug, parent_id)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    parent_id = COALESCE(EXCLUDED.parent_id, categories.parent_id)
RETURNING id::text, name, slug, parent_id::text, created_at
`
	var out domain.Category
	err := r.pool.QueryRow(ctx, q, in.Name, in.Slug, in.ParentID).
		Scan(&out.ID, &out.Name, &out.Slug, &out.ParentID, &out.CreatedAt)
	if err != nil {
		return nil, &domain.StorageError{Op: "category.upsert", Err: err}
	}
	return &out, nil
}
