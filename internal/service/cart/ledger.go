package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/JustAsh123/shopalot/internal/domain"
	cartrepo "github.com/JustAsh123/shopalot/internal/repository/cart"
)

// casRetries bounds the re-read-and-reapply loop when a write from another
// process races ours. Within this process per-user mutations are serialized
// by a lock, so the loop only spins on genuinely external writers.
const casRetries = 3

// Ledger owns the authenticated user's cart: it loads the persisted line
// sequence and applies add/remove mutations against it. Mutations for the
// same user are serialized, every write is version-checked, and the value
// returned to the caller is always the post-write persisted state.
type Ledger struct {
	repo   cartrepo.Repository
	logger *zap.Logger

	mu    sync.Mutex
	users map[string]*userState
}

type userState struct {
	mu       sync.Mutex
	inflight int
}

func NewLedger(repo cartrepo.Repository, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		repo:   repo,
		logger: logger,
		users:  make(map[string]*userState),
	}
}

// Load returns the user's persisted cart lines. A user with no cart
// document yet gets an empty sequence, not an error.
func (l *Ledger) Load(ctx context.Context, userID string) (*domain.Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}
	return l.load(ctx, userID)
}

// AddOne increments the quantity of the line for productID, inserting the
// line at quantity 1 when absent, and persists the result.
func (l *Ledger) AddOne(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: product id required", domain.ErrInvalidArgument)
	}
	return l.mutate(ctx, userID, func(lines []domain.CartLine) []domain.CartLine {
		for i := range lines {
			if lines[i].ProductID == productID {
				lines[i].Qty++
				return lines
			}
		}
		return append(lines, domain.CartLine{ProductID: productID, Qty: 1})
	})
}

// RemoveOne decrements the quantity of the line for productID, dropping the
// line when it reaches zero. A productID with no line is a no-op: the cart
// is returned unchanged and nothing is written.
func (l *Ledger) RemoveOne(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: product id required", domain.ErrInvalidArgument)
	}
	return l.mutate(ctx, userID, func(lines []domain.CartLine) []domain.CartLine {
		for i := range lines {
			if lines[i].ProductID != productID {
				continue
			}
			if lines[i].Qty > 1 {
				lines[i].Qty--
			} else {
				lines = append(lines[:i], lines[i+1:]...)
			}
			return lines
		}
		return lines
	})
}

// Clear empties the user's cart. Checkout uses it after the order commits.
func (l *Ledger) Clear(ctx context.Context, userID string) error {
	_, err := l.mutate(ctx, userID, func([]domain.CartLine) []domain.CartLine {
		return []domain.CartLine{}
	})
	return err
}

// Updating reports whether a mutation for userID is currently in flight.
// Informational only; calls are never rejected because of it.
func (l *Ledger) Updating(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.users[userID]
	return ok && st.inflight > 0
}

func (l *Ledger) mutate(ctx context.Context, userID string, apply func([]domain.CartLine) []domain.CartLine) (*domain.Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidArgument)
	}

	st := l.userState(userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	defer l.done(userID)

	var lastErr error
	for attempt := 0; attempt < casRetries; attempt++ {
		cart, err := l.load(ctx, userID)
		if err != nil {
			return nil, err
		}

		next := apply(cloneLines(cart.Lines))
		if linesEqual(cart.Lines, next) {
			// Nothing changed (e.g. remove of an absent line); skip the write.
			return cart, nil
		}
		cart.Lines = next

		saved, err := l.repo.Put(ctx, *cart)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
		l.logger.Warn("cart write lost a version race, reapplying",
			zap.String("user_id", userID),
			zap.Int("attempt", attempt+1))
	}
	return nil, lastErr
}

func (l *Ledger) load(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := l.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Cart{UserID: userID, Lines: []domain.CartLine{}}, nil
		}
		return nil, err
	}
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	return cart, nil
}

func (l *Ledger) userState(userID string) *userState {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.users[userID]
	if !ok {
		st = &userState{}
		l.users[userID] = st
	}
	st.inflight++
	return st
}

func (l *Ledger) done(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if st, ok := l.users[userID]; ok {
		st.inflight--
		if st.inflight == 0 {
			delete(l.users, userID)
		}
	}
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}

func linesEqual(a, b []domain.CartLine) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
