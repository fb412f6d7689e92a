package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JustAsh123/shopalot/internal/cache"
	"github.com/JustAsh123/shopalot/internal/domain"
	productrepo "github.com/JustAsh123/shopalot/internal/repository/product"
)

const listCacheKey = "catalog:products"

type Service struct {
	repo  productrepo.Repository
	cache *cache.Cache
}

func New(repo productrepo.Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// List serves the catalog read-through: cache hit when fresh, database
// otherwise.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	var cached []domain.Product
	if s.cache.Get(ctx, listCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	s.cache.Set(ctx, listCacheKey, products)
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: product id required", domain.ErrInvalidArgument)
	}
	return s.repo.GetByID(ctx, id)
}

type UpsertInput struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId"`
	ImageURL      string          `json:"imageUrl"`
}

func (s *Service) Upsert(ctx context.Context, in UpsertInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: product name required", domain.ErrInvalidArgument)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidArgument)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", domain.ErrInvalidArgument)
	}

	saved, err := s.repo.Upsert(ctx, productrepo.UpsertInput{
		ID:            strings.TrimSpace(in.ID),
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		Stock:         in.Stock,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		ImageURL:      in.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, listCacheKey)
	return saved, nil
}
