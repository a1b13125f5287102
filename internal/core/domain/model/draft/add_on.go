package draft

import (
	"errors"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/pkg/errs"
)

// ErrAddOnIsNotConstructed is returned when an AddOn instance was not created
// through the NewAddOn factory method.
var ErrAddOnIsNotConstructed = errors.New("AddOn must be created via NewAddOn constructor")

// AddOn is an extra menu item attached to a dinner line, such as an
// additional wine bottle. It is a value object; quantity changes produce
// a new value via WithQuantity.
type AddOn struct {
	menuItemID    kernel.UUID
	name          string
	quantity      int
	unitPrice     int
	isConstructed bool
}

// NewAddOn creates an attachment for the given catalog menu item.
func NewAddOn(menuItem *catalog.MenuItem, quantity int) (AddOn, error) {
	if err := menuItem.Validate(); err != nil {
		return AddOn{}, err
	}
	if quantity <= 0 {
		return AddOn{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}

	return AddOn{
		menuItemID:    menuItem.ID(),
		name:          menuItem.Name(),
		quantity:      quantity,
		unitPrice:     menuItem.UnitPrice(),
		isConstructed: true,
	}, nil
}

// RestoreAddOn rebuilds an attachment from request state, carrying the
// stored unit price verbatim.
func RestoreAddOn(menuItemID kernel.UUID, name string, quantity, unitPrice int) (AddOn, error) {
	if err := menuItemID.Validate(); err != nil {
		return AddOn{}, err
	}
	if quantity <= 0 {
		return AddOn{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}

	return AddOn{
		menuItemID:    menuItemID,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the AddOn was created through a factory method.
func (a AddOn) Validate() error {
	if !a.isConstructed {
		return ErrAddOnIsNotConstructed
	}
	return nil
}

// MenuItemID returns the catalog id of the attached item.
func (a AddOn) MenuItemID() kernel.UUID {
	return a.menuItemID
}

// Name returns the item name.
func (a AddOn) Name() string {
	return a.name
}

// Quantity returns how many units are attached.
func (a AddOn) Quantity() int {
	return a.quantity
}

// UnitPrice returns the per-unit price.
func (a AddOn) UnitPrice() int {
	return a.unitPrice
}

// WithQuantity returns a copy of the attachment with a new quantity.
func (a AddOn) WithQuantity(quantity int) (AddOn, error) {
	if err := a.Validate(); err != nil {
		return AddOn{}, err
	}
	if quantity <= 0 {
		return AddOn{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}
	a.quantity = quantity
	return a, nil
}
