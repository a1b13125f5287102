package order

import (
	"errors"

	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one persisted row of a placed order.
//
// Dinner rows are always unit rows: a draft line of quantity N lands as N
// rows of quantity 1, each carrying its own style and component
// customization. Standalone extra items stay as one row with their full
// quantity.
//
// Prices are carried verbatim from the draft; a Line never recomputes
// against the catalog.
type Line struct {
	// dinnerID and styleID are nil on standalone extra rows
	dinnerID *kernel.UUID
	styleID  *kernel.UUID

	// menuItemID is set on standalone extra rows only
	menuItemID *kernel.UUID

	name      string
	styleName string

	quantity   int
	unitPrice  int
	totalPrice int

	// excluded lists component names removed from the dinner
	excluded []string

	// componentQuantities holds per-component quantity overrides
	componentQuantities map[string]int

	isConstructed bool
}

// NewLineParams carries the fields of one order row.
type NewLineParams struct {
	DinnerID   *kernel.UUID
	StyleID    *kernel.UUID
	MenuItemID *kernel.UUID
	Name       string
	StyleName  string
	Quantity   int
	UnitPrice  int
	Excluded   []string
	Components map[string]int
}

// NewLine creates a validated order row. The total price is derived from
// the unit price and quantity.
func NewLine(params NewLineParams) (Line, error) {
	if params.Name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if params.DinnerID == nil && params.MenuItemID == nil {
		return Line{}, errs.NewValueIsRequiredError("dinnerID or menuItemID")
	}
	if params.Quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidError("quantity is invalid")
	}
	if params.UnitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidError("unitPrice is invalid")
	}

	components := params.Components
	if components == nil {
		components = map[string]int{}
	}

	return Line{
		dinnerID:            params.DinnerID,
		styleID:             params.StyleID,
		menuItemID:          params.MenuItemID,
		name:                params.Name,
		styleName:           params.StyleName,
		quantity:            params.Quantity,
		unitPrice:           params.UnitPrice,
		totalPrice:          params.UnitPrice * params.Quantity,
		excluded:            params.Excluded,
		componentQuantities: components,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// DinnerID returns the dinner's catalog id, nil for extra rows.
func (l Line) DinnerID() *kernel.UUID {
	return l.dinnerID
}

// StyleID returns the applied style's catalog id, nil when unstyled.
func (l Line) StyleID() *kernel.UUID {
	return l.styleID
}

// MenuItemID returns the extra item's catalog id, nil for dinner rows.
func (l Line) MenuItemID() *kernel.UUID {
	return l.menuItemID
}

// Name returns the display name of the row.
func (l Line) Name() string {
	return l.name
}

// StyleName returns the applied style's name, empty when unstyled.
func (l Line) StyleName() string {
	return l.styleName
}

// Quantity returns the row quantity. Dinner rows are always 1.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the per-unit price carried from the draft.
func (l Line) UnitPrice() int {
	return l.unitPrice
}

// TotalPrice returns unitPrice times quantity.
func (l Line) TotalPrice() int {
	return l.totalPrice
}

// Excluded returns the component names removed from the dinner.
func (l Line) Excluded() []string {
	return l.excluded
}

// ComponentQuantities returns the per-component quantity overrides.
func (l Line) ComponentQuantities() map[string]int {
	return l.componentQuantities
}
