package queries

import (
	"errors"

	"maitred/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the browsable menu: active dinners with their
// components, serving styles and orderable extra items. Backs the menu
// screen of the client, which shows prices before the conversation starts.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the menu. This is a
// parameterless query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is the full menu listing.
type GetMenuQueryResponse struct {
	Dinners    []MenuDinnerResponse
	Styles     []MenuStyleResponse
	ExtraItems []MenuItemResponse
}

// MenuDinnerResponse represents one dinner row of the menu listing.
type MenuDinnerResponse struct {
	Name      string
	LocalName string
	BasePrice int
}

// MenuStyleResponse represents one serving style row of the menu listing.
type MenuStyleResponse struct {
	Name       string
	LocalName  string
	ExtraPrice int
}

// MenuItemResponse represents one orderable extra item row.
type MenuItemResponse struct {
	Name      string
	LocalName string
	Category  string
	UnitPrice int
}
