// Package catalogrepo provides data transfer objects and mapping functions
// for the menu catalog: dinners with their components, serving styles and
// standalone menu items.
package catalogrepo

import (
	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DinnerDTO represents the database structure for persisting dinners.
// Components and excluded styles are stored as JSON documents since they
// are only ever read as part of the whole dinner.
type DinnerDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name           string         `gorm:"uniqueIndex"`
	LocalName      string
	BasePrice      int
	Components     []ComponentDTO `gorm:"serializer:json"`
	ExcludedStyles []string       `gorm:"serializer:json"`
	Active         bool
}

// TableName specifies the database table name for dinner entities.
func (DinnerDTO) TableName() string {
	return "dinners"
}

// ComponentDTO is the JSON shape of one dinner component.
type ComponentDTO struct {
	Name            string `json:"name"`
	DefaultQuantity int    `json:"defaultQuantity"`
	UnitPrice       int    `json:"unitPrice"`
}

// StyleDTO represents the database structure for persisting serving styles.
type StyleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"uniqueIndex"`
	LocalName  string
	ExtraPrice int
	Active     bool
}

// TableName specifies the database table name for style entities.
func (StyleDTO) TableName() string {
	return "styles"
}

// MenuItemDTO represents the database structure for persisting standalone
// menu items.
type MenuItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	LocalName string
	Category  string    `gorm:"index"`
	UnitPrice int
	Orderable bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func dinnerFromDomain(dinner *catalog.Dinner) DinnerDTO {
	components := make([]ComponentDTO, 0, len(dinner.Components()))
	for _, component := range dinner.Components() {
		components = append(components, ComponentDTO{
			Name:            component.Name(),
			DefaultQuantity: component.DefaultQuantity(),
			UnitPrice:       component.UnitPrice(),
		})
	}

	return DinnerDTO{
		ID:             dinner.ID().Bytes(),
		Name:           dinner.Name(),
		LocalName:      dinner.LocalName(),
		BasePrice:      dinner.BasePrice(),
		Components:     components,
		ExcludedStyles: dinner.ExcludedStyles(),
		Active:         dinner.Active(),
	}
}

func dinnerToDomain(dto DinnerDTO) (*catalog.Dinner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	components := make([]catalog.Component, 0, len(dto.Components))
	for _, componentDTO := range dto.Components {
		component, err := catalog.NewComponent(
			componentDTO.Name, componentDTO.DefaultQuantity, componentDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	return catalog.NewDinner(id, dto.Name, dto.LocalName, dto.BasePrice,
		components, dto.ExcludedStyles, dto.Active)
}

func styleFromDomain(style *catalog.Style) StyleDTO {
	return StyleDTO{
		ID:         style.ID().Bytes(),
		Name:       style.Name(),
		LocalName:  style.LocalName(),
		ExtraPrice: style.ExtraPrice(),
		Active:     style.Active(),
	}
}

func styleToDomain(dto StyleDTO) (*catalog.Style, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewStyle(id, dto.Name, dto.LocalName, dto.ExtraPrice, dto.Active)
}

func menuItemFromDomain(menuItem *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:        menuItem.ID().Bytes(),
		Name:      menuItem.Name(),
		LocalName: menuItem.LocalName(),
		Category:  menuItem.Category(),
		UnitPrice: menuItem.UnitPrice(),
		Orderable: menuItem.Orderable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewMenuItem(id, dto.Name, dto.LocalName, dto.Category,
		dto.UnitPrice, dto.Orderable)
}
