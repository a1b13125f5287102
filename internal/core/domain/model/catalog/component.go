package catalog

import (
	"errors"
	"strings"

	"maitred/internal/pkg/errs"
)

// maxPrice bounds catalog prices in KRW. Used only for range validation.
const maxPrice = 100_000_000

// ErrComponentIsNotConstructed is returned when a Component instance was not
// created through the NewComponent factory method.
var ErrComponentIsNotConstructed = errors.New("Component must be created via NewComponent constructor")

// Component is one course element of a dinner, such as wine, steak or
// a flower bouquet. Each component ships with a default quantity and a
// unit price used to price customization deltas.
type Component struct {
	name            string
	defaultQuantity int
	unitPrice       int
	isConstructed   bool
}

// NewComponent creates a validated Component value.
func NewComponent(name string, defaultQuantity, unitPrice int) (Component, error) {
	if name == "" {
		return Component{}, errs.NewValueIsRequiredError("name")
	}
	if defaultQuantity < 0 {
		return Component{}, errs.NewValueIsOutOfRangeError("defaultQuantity", defaultQuantity, 0, 100)
	}
	if unitPrice < 0 {
		return Component{}, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, maxPrice)
	}

	return Component{
		name:            name,
		defaultQuantity: defaultQuantity,
		unitPrice:       unitPrice,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Component was constructed via NewComponent.
func (c Component) Validate() error {
	if !c.isConstructed {
		return ErrComponentIsNotConstructed
	}
	return nil
}

// Name returns the component name.
func (c Component) Name() string {
	return c.name
}

// DefaultQuantity returns how many units the dinner includes by default.
func (c Component) DefaultQuantity() int {
	return c.defaultQuantity
}

// UnitPrice returns the per-unit price used for customization deltas.
func (c Component) UnitPrice() int {
	return c.unitPrice
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}
