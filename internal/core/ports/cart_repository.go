package ports

import (
	"context"

	"maitred/internal/core/domain/model/draft"
)

// CartRepository defines the persistence contract for session carts.
// The cart is a write-through copy of the conversation draft, saved after
// every turn and deleted when checkout commits.
type CartRepository interface {
	// Upsert persists the cart, inserting on first save and replacing
	// the stored lines on every later one.
	Upsert(ctx context.Context, cart *draft.Cart) error

	// Get retrieves a session's cart.
	// Returns an ObjectNotFoundError when the session has no cart.
	Get(ctx context.Context, sessionID string) (*draft.Cart, error)

	// Delete removes a session's cart. Deleting an absent cart is not
	// an error.
	Delete(ctx context.Context, sessionID string) error
}
