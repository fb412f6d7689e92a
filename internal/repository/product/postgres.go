package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustAsh123/shopalot/internal/domain"
)

const productColumns = `id::text, name, description, price, stock, COALESCE(category_id::text, ''), COALESCE(subcategory_id::text, ''), image_url, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, &domain.StorageError{Op: "product.list", Err: err}
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, &domain.StorageError{Op: "product.list", Err: err}
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "product.list", Err: err}
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	row := r.pool.QueryRow(ctx, q, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "product.get", Err: err}
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, in UpsertInput) (*domain.Product, error) {
	var row pgx.Row
	if in.ID == "" {
		const q = `
INSERT INTO products (name, description, price, stock, category_id, subcategory_id, image_url)
VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NULLIF($6, '')::uuid, $7)
RETURNING ` + productColumns
		row = r.pool.QueryRow(ctx, q, in.Name, in.Description, in.Price, in.Stock, in.CategoryID, in.SubcategoryID, in.ImageURL)
	} else {
		const q = `
UPDATE products
SET name = $2,
    description = $3,
    price = $4,
    stock = $5,
    category_id = NULLIF($6, '')::uuid,
    subcategory_id = NULLIF($7, '')::uuid,
    image_url = $8
WHERE id = $1
RETURNING ` + productColumns
		row = r.pool.QueryRow(ctx, q, in.ID, in.Name, in.Description, in.Price, in.Stock, in.CategoryID, in.SubcategoryID, in.ImageURL)
	}

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "product.upsert", Err: err}
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.CategoryID,
		&p.SubcategoryID,
		&p.ImageURL,
		&p.CreatedAt,
	)
	return p, err
}
