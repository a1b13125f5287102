package catalog

import (
	"errors"

	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem factory method.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is an individually orderable item such as a bottle of wine or
// a dessert. Menu items are sold standalone as extras alongside dinners.
type MenuItem struct {
	id            kernel.UUID
	name          string
	localName     string
	category      string
	unitPrice     int
	orderable     bool
	isConstructed bool
}

// NewMenuItem creates a validated MenuItem entry.
// orderable marks whether the item may be sold standalone as an extra.
func NewMenuItem(id kernel.UUID, name, localName, category string, unitPrice int, orderable bool) (*MenuItem, error) {
	m := &MenuItem{
		category:      category,
		orderable:     orderable,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name, localName),
		m.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the MenuItem was constructed via NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier of the menu item.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the canonical item name.
func (m *MenuItem) Name() string {
	return m.name
}

// LocalName returns the Korean item name.
func (m *MenuItem) LocalName() string {
	return m.localName
}

// Category returns the item category (wine, dessert, ...).
func (m *MenuItem) Category() string {
	return m.category
}

// UnitPrice returns the standalone price per unit.
func (m *MenuItem) UnitPrice() int {
	return m.unitPrice
}

// Orderable reports whether the item may be sold standalone.
func (m *MenuItem) Orderable() bool {
	return m.orderable
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name, localName string) error {
	if name == "" && localName == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	m.localName = localName
	return nil
}

func (m *MenuItem) setUnitPrice(unitPrice int) error {
	if unitPrice < 0 {
		return errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, maxPrice)
	}
	m.unitPrice = unitPrice
	return nil
}
