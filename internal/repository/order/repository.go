package order

import (
	"context"

	"github.com/JustAsh123/shopalot/internal/domain"
)

type Repository interface {
	// Create persists the order and its item snapshots and decrements
	// product stock, all in one transaction. Insufficient stock fails the
	// whole order with domain.ErrInvalidArgument.
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
