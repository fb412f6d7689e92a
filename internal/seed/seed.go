package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	categoryrepo "github.com/JustAsh123/shopalot/internal/repository/category"
	productrepo "github.com/JustAsh123/shopalot/internal/repository/product"
	categorysvc "github.com/JustAsh123/shopalot/internal/service/category"
)

type productSeed struct {
	Name        string
	Description string
	Price       string
	Stock       int
	Category    string
	Subcategory string
	ImageURL    string
}

var demoProducts = []productSeed{
	{
		Name:        "Wireless Headphones",
		Description: "Over-ear headphones with 30h battery",
		Price:       "2999.00",
		Stock:       40,
		Category:    "Electronics",
		Subcategory: "Audio",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/headphones.jpg",
	},
	{
		Name:        "Mechanical Keyboard",
		Description: "Hot-swappable switches, RGB",
		Price:       "4499.00",
		Stock:       15,
		Category:    "Electronics",
		Subcategory: "Accessories",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/keyboard.jpg",
	},
	{
		Name:        "Ceramic Mug",
		Description: "350ml stoneware mug",
		Price:       "349.00",
		Stock:       120,
		Category:    "Home & Kitchen",
		Subcategory: "Drinkware",
	},
}

// Apply inserts demo catalog data for manual testing. Categories upsert by
// slug; products insert fresh rows, so rerunning duplicates them.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := categoryrepo.NewPostgres(pool)
	products := productrepo.NewPostgres(pool)

	ids := make(map[string]string)
	ensure := func(name string, parentID *string) (string, error) {
		if id, ok := ids[name]; ok {
			return id, nil
		}
		saved, err := categories.Upsert(ctx, categoryrepo.UpsertInput{
			Name:     name,
			Slug:     categorysvc.Slugify(name),
			ParentID: parentID,
		})
		if err != nil {
			return "", fmt.Errorf("ensure category %s: %w", name, err)
		}
		ids[name] = saved.ID
		return saved.ID, nil
	}

	for _, p := range demoProducts {
		categoryID, err := ensure(p.Category, nil)
		if err != nil {
			return err
		}
		subcategoryID, err := ensure(p.Subcategory, &categoryID)
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("seed product %s: bad price: %w", p.Name, err)
		}
		if _, err := products.Upsert(ctx, productrepo.UpsertInput{
			Name:          p.Name,
			Description:   p.Description,
			Price:         price,
			Stock:         p.Stock,
			CategoryID:    categoryID,
			SubcategoryID: subcategoryID,
			ImageURL:      p.ImageURL,
		}); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}

	return nil
}
