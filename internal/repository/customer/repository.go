package customer

import (
	"context"

	"github.com/JustAsh123/shopalot/internal/domain"
)

// Repository stores the user record: today that is just the address book,
// kept as a JSON array on the user row the way the storefront kept it on
// the user document.
type Repository interface {
	ListAddresses(ctx context.Context, userID string) ([]domain.Address, error)
	// PutAddresses replaces the user's address list, creating the user
	// row when absent.
	PutAddresses(ctx context.Context, userID string, addresses []domain.Address) error
}
