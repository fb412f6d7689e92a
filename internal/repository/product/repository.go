package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JustAsh123/shopalot/internal/domain"
)

type UpsertInput struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	Stock         int
	CategoryID    string
	SubcategoryID string
	ImageURL      string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// Upsert inserts when in.ID is empty and updates otherwise.
	Upsert(ctx context.Context, in UpsertInput) (*domain.Product, error)
}
