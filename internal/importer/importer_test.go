package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JustAsh123/shopalot/internal/domain"
	categoryrepo "github.com/JustAsh123/shopalot/internal/repository/category"
	productrepo "github.com/JustAsh123/shopalot/internal/repository/product"
)

type stubProductRepo struct {
	items []productrepo.UpsertInput
}

func (s *stubProductRepo) Upsert(_ context.Context, in productrepo.UpsertInput) (*domain.Product, error) {
	s.items = append(s.items, in)
	return &domain.Product{ID: "prod-" + in.Name, Name: in.Name}, nil
}

type stubCategoryRepo struct {
	items []categoryrepo.UpsertInput
}

func (s *stubCategoryRepo) Upsert(_ context.Context, in categoryrepo.UpsertInput) (*domain.Category, error) {
	s.items = append(s.items, in)
	return &domain.Category{ID: "cat-" + in.Slug, Name: in.Name, Slug: in.Slug, ParentID: in.ParentID}, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `name,description,price,stock,category,subcategory,image_url
Wireless Mouse,Compact mouse,799.00,25,Electronics,Accessories,https://example.com/mouse.jpg
Mechanical Keyboard,Clicky keys,2499.50,10,Electronics,Accessories,
Ceramic Mug,350ml mug,129,100,Kitchen,,`

	products := &stubProductRepo{}
	categories := &stubCategoryRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), products, categories)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 products imported, got %d", count)
	}
	if len(products.items) != 3 {
		t.Fatalf("expected 3 products saved, got %d", len(products.items))
	}

	// Electronics, Accessories and Kitchen, each upserted exactly once.
	if len(categories.items) != 3 {
		t.Fatalf("expected 3 categories saved, got %d: %+v", len(categories.items), categories.items)
	}
	if categories.items[0].Slug != "electronics" || categories.items[0].ParentID != nil {
		t.Fatalf("unexpected first category: %+v", categories.items[0])
	}
	if categories.items[1].Slug != "accessories" || categories.items[1].ParentID == nil {
		t.Fatalf("subcategory missing parent: %+v", categories.items[1])
	}

	first := products.items[0]
	if first.CategoryID != "cat-electronics" || first.SubcategoryID != "cat-accessories" {
		t.Fatalf("product category links wrong: %+v", first)
	}
	wantPrice, _ := decimal.NewFromString("799.00")
	if !first.Price.Equal(wantPrice) || first.Stock != 25 {
		t.Fatalf("product fields wrong: %+v", first)
	}
}

func TestCSVImporter_BadPriceFails(t *testing.T) {
	csvData := `name,price
Broken,abc`
	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{}, &stubCategoryRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for bad price")
	}
}
