// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, and the speech/LLM
// gateways. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/kernel"
)

// CatalogRepository defines the read contract for the menu catalog.
// It satisfies catalog.Source, so it can feed the catalog cache directly.
type CatalogRepository interface {
	// GetAllDinners retrieves every dinner, active or not.
	GetAllDinners(ctx context.Context) ([]*catalog.Dinner, error)

	// GetAllStyles retrieves every serving style.
	GetAllStyles(ctx context.Context) ([]*catalog.Style, error)

	// GetAllMenuItems retrieves every standalone menu item.
	GetAllMenuItems(ctx context.Context) ([]*catalog.MenuItem, error)

	// GetDinner retrieves one dinner by its identifier.
	GetDinner(ctx context.Context, id kernel.UUID) (*catalog.Dinner, error)

	// GetStyle retrieves one style by its identifier.
	GetStyle(ctx context.Context, id kernel.UUID) (*catalog.Style, error)

	// GetMenuItem retrieves one menu item by its identifier.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)
}
