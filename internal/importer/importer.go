package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JustAsh123/shopalot/internal/domain"
	categoryrepo "github.com/JustAsh123/shopalot/internal/repository/category"
	productrepo "github.com/JustAsh123/shopalot/internal/repository/product"
	categorysvc "github.com/JustAsh123/shopalot/internal/service/category"
)

type ProductWriter interface {
	Upsert(ctx context.Context, in productrepo.UpsertInput) (*domain.Product, error)
}

type CategoryWriter interface {
	Upsert(ctx context.Context, in categoryrepo.UpsertInput) (*domain.Category, error)
}

// CSVImporter reads a catalog export and upserts its categories and
// products. Expected headers: name, description, price, stock, category,
// subcategory, image_url. Category cells hold display names; slugs and the
// parent link are derived.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
	}
}

// Run parses CSV rows and upserts products, creating their categories on
// first sight. Returns the number of products imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	// Category display name -> stored id, so each category is upserted once.
	seen := make(map[string]string)
	imported := 0

	for {
		row, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		name := cell(row, index, "name")
		if name == "" {
			continue
		}

		price, err := decimal.NewFromString(cell(row, index, "price"))
		if err != nil {
			return imported, fmt.Errorf("product %q: bad price: %w", name, err)
		}
		stock := 0
		if raw := cell(row, index, "stock"); raw != "" {
			stock, err = strconv.Atoi(raw)
			if err != nil {
				return imported, fmt.Errorf("product %q: bad stock: %w", name, err)
			}
		}

		categoryID, err := i.ensureCategory(ctx, seen, cell(row, index, "category"), nil)
		if err != nil {
			return imported, err
		}
		subcategoryID, err := i.ensureCategory(ctx, seen, cell(row, index, "subcategory"), &categoryID)
		if err != nil {
			return imported, err
		}

		if _, err := i.products.Upsert(ctx, productrepo.UpsertInput{
			Name:          name,
			Description:   cell(row, index, "description"),
			Price:         price,
			Stock:         stock,
			CategoryID:    categoryID,
			SubcategoryID: subcategoryID,
			ImageURL:      cell(row, index, "image_url"),
		}); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", name, err)
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) ensureCategory(ctx context.Context, seen map[string]string, name string, parentID *string) (string, error) {
	if name == "" {
		return "", nil
	}
	if parentID != nil && *parentID == "" {
		parentID = nil
	}
	if id, ok := seen[name]; ok {
		return id, nil
	}
	saved, err := i.categories.Upsert(ctx, categoryrepo.UpsertInput{
		Name:     name,
		Slug:     categorysvc.Slugify(name),
		ParentID: parentID,
	})
	if err != nil {
		return "", fmt.Errorf("upsert category %q: %w", name, err)
	}
	seen[name] = saved.ID
	return saved.ID, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func cell(row []string, index map[string]int, key string) string {
	i, ok := index[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
