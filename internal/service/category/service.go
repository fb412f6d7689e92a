package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/JustAsh123/shopalot/internal/domain"
	categoryrepo "github.com/JustAsh123/shopalot/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Tree returns the stored category records assembled into the two-level
// navigation tree.
func (s *Service) Tree(ctx context.Context) ([]*domain.CategoryNode, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(records), nil
}

type UpsertInput struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId"`
}

func (s *Service) Upsert(ctx context.Context, in UpsertInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name required", domain.ErrInvalidArgument)
	}
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	return s.repo.Upsert(ctx, categoryrepo.UpsertInput{
		Name:     name,
		Slug:     slug,
		ParentID: in.ParentID,
	})
}

// BuildTree assembles flat category records into a two-level tree. Each
// record whose ParentID resolves to a known record becomes a child of that
// record; everything else, including records pointing at an unknown parent,
// lands at the top level. An orphaned record is deliberately promoted
// rather than dropped or rejected. Relative input order is preserved at
// every level, and the single pass means cycles cannot recurse.
func BuildTree(records []domain.Category) []*domain.CategoryNode {
	nodes := make(map[string]*domain.CategoryNode, len(records))
	for _, rec := range records {
		nodes[rec.ID] = &domain.CategoryNode{
			Category:      rec,
			Subcategories: []*domain.CategoryNode{},
		}
	}

	roots := make([]*domain.CategoryNode, 0, len(records))
	for _, rec := range records {
		node := nodes[rec.ID]
		if rec.ParentID != nil {
			if parent, ok := nodes[*rec.ParentID]; ok && parent != node {
				parent.Subcategories = append(parent.Subcategories, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// Slugify derives a URL slug from a display name: lowercase, "&" spelled
// out, whitespace to hyphens, everything else non-alphanumeric stripped.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.Join(strings.Fields(s), "-")

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
