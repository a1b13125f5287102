package ports

import (
	"context"

	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying placed orders
// through the fulfillment lifecycle.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its customer-facing number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAllInPlacedStatus retrieves all orders still waiting for the
	// kitchen to accept them. Used by the acceptance job.
	GetAllInPlacedStatus(ctx context.Context) ([]*order.Order, error)
}
