package category

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustAsh123/shopalot/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func TestPostgres_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE categories CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	repo := NewPostgres(pool)
	parent, err := repo.Upsert(ctx, UpsertInput{Name: "Audio", Slug: "audio"})
	if err != nil {
		t.Fatalf("upsert parent: %v", err)
	}

	child, err := repo.Upsert(ctx, UpsertInput{Name: "Headphones", Slug: "headphones", ParentID: &parent.ID})
	if err != nil {
		t.Fatalf("upsert child: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != parent.ID {
		t.Fatalf("child parent not stored: %+v", child)
	}

	// Upserting the same slug renames in place instead of duplicating.
	renamed, err := repo.Upsert(ctx, UpsertInput{Name: "Audio & Hi-Fi", Slug: "audio"})
	if err != nil {
		t.Fatalf("upsert rename: %v", err)
	}
	if renamed.ID != parent.ID || renamed.Name != "Audio & Hi-Fi" {
		t.Fatalf("rename created new record: %+v", renamed)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}
