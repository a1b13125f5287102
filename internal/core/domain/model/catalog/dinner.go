package catalog

import (
	"errors"

	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/pkg/errs"
)

// ErrDinnerIsNotConstructed is returned when a Dinner instance was not created
// through the NewDinner factory method.
var ErrDinnerIsNotConstructed = errors.New("Dinner must be created via NewDinner constructor")

// Dinner is a curated multi-course menu offered by the kitchen.
// It carries a base price, the component list that makes up the course,
// and the serving styles it cannot be combined with.
//
// Dinner is immutable after construction; conversation logic treats the
// catalog as read-only reference data.
type Dinner struct {
	id kernel.UUID

	// name is the canonical (English) menu name used for matching and display
	name string

	// localName is the Korean menu name as printed on the physical menu
	localName string

	basePrice int

	components []Component

	// excludedStyles lists serving style names this dinner cannot take,
	// e.g. a champagne dinner excludes the simple style
	excludedStyles []string

	active bool

	isConstructed bool
}

// NewDinner creates a validated Dinner entry.
// Components and excludedStyles may be empty; name, localName and a
// non-negative basePrice are required.
func NewDinner(id kernel.UUID, name, localName string, basePrice int,
	components []Component, excludedStyles []string, active bool) (*Dinner, error) {
	d := &Dinner{
		components:     components,
		excludedStyles: excludedStyles,
		active:         active,
		isConstructed:  true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name, localName),
		d.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Dinner was constructed via NewDinner.
func (d *Dinner) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDinnerIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier of the dinner.
func (d *Dinner) ID() kernel.UUID {
	return d.id
}

// Name returns the canonical menu name.
func (d *Dinner) Name() string {
	return d.name
}

// LocalName returns the Korean menu name.
func (d *Dinner) LocalName() string {
	return d.localName
}

// BasePrice returns the dinner price before style and customization.
func (d *Dinner) BasePrice() int {
	return d.basePrice
}

// Components returns the course composition of the dinner.
func (d *Dinner) Components() []Component {
	return d.components
}

// Active reports whether the dinner is currently orderable.
func (d *Dinner) Active() bool {
	return d.active
}

// AllowsStyle reports whether the given serving style may be applied
// to this dinner. The comparison is case-insensitive on style names.
func (d *Dinner) AllowsStyle(styleName string) bool {
	for _, excluded := range d.excludedStyles {
		if equalFold(excluded, styleName) {
			return false
		}
	}
	return true
}

// ExcludedStyles returns the serving style names this dinner cannot take.
func (d *Dinner) ExcludedStyles() []string {
	return d.excludedStyles
}

// Component looks up a course component by name. Matching is the same
// loose contains match used for customization requests: exact first,
// then case-insensitive substring in either direction.
func (d *Dinner) Component(name string) (Component, bool) {
	for _, c := range d.components {
		if equalFold(c.Name(), name) {
			return c, true
		}
	}
	for _, c := range d.components {
		if containsFold(c.Name(), name) || containsFold(name, c.Name()) {
			return c, true
		}
	}
	return Component{}, false
}

func (d *Dinner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dinner) setName(name, localName string) error {
	if name == "" && localName == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	d.localName = localName
	return nil
}

func (d *Dinner) setBasePrice(basePrice int) error {
	if basePrice < 0 {
		return errs.NewValueIsOutOfRangeError("basePrice", basePrice, 0, maxPrice)
	}
	d.basePrice = basePrice
	return nil
}
