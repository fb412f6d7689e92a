package category

import (
	"context"

	"github.com/JustAsh123/shopalot/internal/domain"
)

type UpsertInput struct {
	Name     string
	Slug     string
	ParentID *string
}

type Repository interface {
	// List returns all category records in creation order.
	List(ctx context.Context) ([]domain.Category, error)
	Upsert(ctx context.Context, in UpsertInput) (*domain.Category, error)
}
