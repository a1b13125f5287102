package catalog

import (
	"errors"

	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/pkg/errs"
)

// ErrStyleIsNotConstructed is returned when a Style instance was not created
// through the NewStyle factory method.
var ErrStyleIsNotConstructed = errors.New("Style must be created via NewStyle constructor")

// Style is a serving presentation applied to a dinner, priced as an
// extra on top of the dinner's base price.
type Style struct {
	id            kernel.UUID
	name          string
	localName     string
	extraPrice    int
	active        bool
	isConstructed bool
}

// NewStyle creates a validated Style entry.
func NewStyle(id kernel.UUID, name, localName string, extraPrice int, active bool) (*Style, error) {
	s := &Style{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name, localName),
		s.setExtraPrice(extraPrice),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Style was constructed via NewStyle.
func (s *Style) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStyleIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier of the style.
func (s *Style) ID() kernel.UUID {
	return s.id
}

// Name returns the canonical style name.
func (s *Style) Name() string {
	return s.name
}

// LocalName returns the Korean style name.
func (s *Style) LocalName() string {
	return s.localName
}

// ExtraPrice returns the surcharge added to the dinner base price.
func (s *Style) ExtraPrice() int {
	return s.extraPrice
}

// Active reports whether the style is currently offered.
func (s *Style) Active() bool {
	return s.active
}

func (s *Style) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Style) setName(name, localName string) error {
	if name == "" && localName == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	s.localName = localName
	return nil
}

func (s *Style) setExtraPrice(extraPrice int) error {
	if extraPrice < 0 {
		return errs.NewValueIsOutOfRangeError("extraPrice", extraPrice, 0, maxPrice)
	}
	s.extraPrice = extraPrice
	return nil
}
