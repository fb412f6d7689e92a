package cart

import (
	"context"

	"github.com/JustAsh123/shopalot/internal/domain"
)

// Repository is the cart document store: one document per user, fetched and
// replaced whole. Put is a compare-and-swap on the document version so a
// stale writer fails with domain.ErrVersionConflict instead of clobbering a
// concurrent update.
type Repository interface {
	// Get returns the cart document for userID, or domain.ErrNotFound.
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	// Put overwrites the document with cart.Lines. cart.Version must match
	// the persisted version (0 for a document that does not exist yet);
	// the stored version is bumped and returned on the resulting cart.
	Put(ctx context.Context, cart domain.Cart) (*domain.Cart, error)
}
