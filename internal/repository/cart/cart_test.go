package cart

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustAsh123/shopalot/internal/domain"
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

func resetCarts(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE carts`); err != nil {
		t.Fatalf("truncate carts: %v", err)
	}
}

func TestPostgres_GetMissingCart(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetCarts(ctx, t, pool)

	repo := NewPostgres(pool)
	_, err := repo.Get(ctx, "nobody")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostgres_PutAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetCarts(ctx, t, pool)

	repo := NewPostgres(pool)
	saved, err := repo.Put(ctx, domain.Cart{
		UserID: "u1",
		Lines:  []domain.CartLine{{ProductID: "p1", Qty: 2}},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if saved.Version != 1 {
		t.Fatalf("expected version 1, got %d", saved.Version)
	}

	fetched, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(fetched.Lines) != 1 || fetched.Lines[0] != (domain.CartLine{ProductID: "p1", Qty: 2}) {
		t.Fatalf("unexpected lines %+v", fetched.Lines)
	}
}

func TestPostgres_PutIsCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetCarts(ctx, t, pool)

	repo := NewPostgres(pool)
	first, err := repo.Put(ctx, domain.Cart{UserID: "u1", Lines: []domain.CartLine{{ProductID: "p1", Qty: 1}}})
	if err != nil {
		t.Fatalf("initial put: %v", err)
	}

	// A second writer with the current version wins.
	if _, err := repo.Put(ctx, domain.Cart{
		UserID:  "u1",
		Lines:   []domain.CartLine{{ProductID: "p1", Qty: 2}},
		Version: first.Version,
	}); err != nil {
		t.Fatalf("current-version put: %v", err)
	}

	// The first writer, now stale, must be refused.
	_, err = repo.Put(ctx, domain.Cart{
		UserID:  "u1",
		Lines:   []domain.CartLine{{ProductID: "p1", Qty: 99}},
		Version: first.Version,
	})
	if !errors.Is(err, domain.ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}

	fetched, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Lines[0].Qty != 2 {
		t.Fatalf("stale write applied: %+v", fetched.Lines)
	}
}
