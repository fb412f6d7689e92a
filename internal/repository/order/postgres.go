package order

import (
	"context"
	"fmt"

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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, &domain.StorageError{Op: "order.create", Err: err}
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_amount, delivery_address, payment_method)
VALUES ($1, $2, $3, $4)
RETURNING id::text, order_date
`, o.UserID, o.TotalAmount, o.DeliveryAddress, o.PaymentMethod).Scan(&o.ID, &o.OrderDate)
	if err != nil {
		return nil, &domain.StorageError{Op: "order.create", Err: err}
	}

	for _, item := range o.Items {
		// Guarded decrement: the WHERE clause refuses to oversell.
		cmd, err := tx.Exec(ctx, `
UPDATE products
SET stock = stock - $1
WHERE id = $2 AND stock >= $1
`, item.Qty, item.ProductID)
		if err != nil {
			return nil, &domain.StorageError{Op: "order.create", Err: err}
		}
		if cmd.RowsAffected() == 0 {
			return nil, fmt.Errorf("%w: insufficient stock for product %s", domain.ErrInvalidArgument, item.ProductID)
		}

		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, qty, name_at_order, price_at_order, image_url_at_order)
VALUES ($1, $2, $3, $4, $5, $6)
`, o.ID, item.ProductID, item.Qty, item.NameAtOrder, item.PriceAtOrder, item.ImageURLAtOrder); err != nil {
			return nil, &domain.StorageError{Op: "order.create", Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &domain.StorageError{Op: "order.create", Err: err}
	}
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id, total_amount, delivery_address, payment_method, order_date
FROM orders
WHERE user_id = $1
ORDER BY order_date DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, &domain.StorageError{Op: "order.list", Err: err}
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.DeliveryAddress, &o.PaymentMethod, &o.OrderDate); err != nil {
			return nil, &domain.StorageError{Op: "order.list", Err: err}
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "order.list", Err: err}
	}

	for i := range result {
		items, err := r.listItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT product_id, qty, name_at_order, price_at_order, image_url_at_order
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, &domain.StorageError{Op: "order.items", Err: err}
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Qty, &it.NameAtOrder, &it.PriceAtOrder, &it.ImageURLAtOrder); err != nil {
			return nil, &domain.StorageError{Op: "order.items", Err: err}
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "order.items", Err: err}
	}
	return items, nil
}
