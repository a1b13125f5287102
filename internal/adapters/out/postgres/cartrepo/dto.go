// Package cartrepo persists session carts. The cart is a write-through
// snapshot of the conversation, stored as one row per session with the
// draft lines serialized as a JSON document.
package cartrepo

import (
	"time"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting session carts.
type CartDTO struct {
	SessionID  string        `gorm:"primaryKey;size:128"`
	State      int
	Address    string
	Occasion   string
	DeliveryAt *time.Time
	Memo       string
	UpdatedAt  time.Time
	Items      []CartItemDTO `gorm:"serializer:json"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO is the JSON shape of one draft line inside the cart document.
type CartItemDTO struct {
	DinnerID   *uuid.UUID       `json:"dinnerId,omitempty"`
	DinnerName string           `json:"dinnerName,omitempty"`
	StyleID    *uuid.UUID       `json:"styleId,omitempty"`
	StyleName  string           `json:"styleName,omitempty"`
	StyleExtra int              `json:"styleExtra,omitempty"`
	MenuItemID *uuid.UUID       `json:"menuItemId,omitempty"`
	Quantity   int              `json:"quantity"`
	BasePrice  int              `json:"basePrice"`
	UnitPrice  int              `json:"unitPrice"`
	ItemIndex  int              `json:"itemIndex"`
	Components map[string]int   `json:"components,omitempty"`
	Excluded   []string         `json:"excluded,omitempty"`
	AddOns     []CartAddOnDTO   `json:"addOns,omitempty"`
}

// CartAddOnDTO is the JSON shape of one attachment on a draft line.
type CartAddOnDTO struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  int       `json:"unitPrice"`
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(cart *draft.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(cart.Items()))
	for _, item := range cart.Items() {
		addOns := make([]CartAddOnDTO, 0, len(item.AddOns()))
		for _, addOn := range item.AddOns() {
			addOns = append(addOns, CartAddOnDTO{
				MenuItemID: addOn.MenuItemID().Bytes(),
				Name:       addOn.Name(),
				Quantity:   addOn.Quantity(),
				UnitPrice:  addOn.UnitPrice(),
			})
		}

		items = append(items, CartItemDTO{
			DinnerID:   optionalUUID(item.DinnerID()),
			DinnerName: item.DinnerName(),
			StyleID:    optionalUUID(item.StyleID()),
			StyleName:  item.StyleName(),
			StyleExtra: item.StyleExtra(),
			MenuItemID: optionalUUID(item.MenuItemID()),
			Quantity:   item.Quantity(),
			BasePrice:  item.BasePrice(),
			UnitPrice:  item.UnitPrice(),
			ItemIndex:  item.ItemIndex(),
			Components: item.ComponentOverrides(),
			Excluded:   item.ExcludedComponents(),
			AddOns:     addOns,
		})
	}

	return CartDTO{
		SessionID:  cart.SessionID(),
		State:      int(cart.State()),
		Address:    cart.Address(),
		Occasion:   cart.Occasion(),
		DeliveryAt: cart.DeliveryAt(),
		Memo:       cart.Memo(),
		UpdatedAt:  cart.UpdatedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO back into a cart aggregate.
func toDomain(dto CartDTO) (*draft.Cart, error) {
	items := make([]*draft.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		dinnerID, err := optionalKernelUUID(itemDTO.DinnerID)
		if err != nil {
			return nil, err
		}
		styleID, err := optionalKernelUUID(itemDTO.StyleID)
		if err != nil {
			return nil, err
		}
		menuItemID, err := optionalKernelUUID(itemDTO.MenuItemID)
		if err != nil {
			return nil, err
		}

		addOns := make([]draft.AddOn, 0, len(itemDTO.AddOns))
		for _, addOnDTO := range itemDTO.AddOns {
			addOnID, err := kernel.UUIDFromBytes(addOnDTO.MenuItemID[:])
			if err != nil {
				return nil, err
			}
			addOn, err := draft.RestoreAddOn(addOnID, addOnDTO.Name, addOnDTO.Quantity, addOnDTO.UnitPrice)
			if err != nil {
				return nil, err
			}
			addOns = append(addOns, addOn)
		}

		item, err := draft.RestoreItem(draft.RestoreItemParams{
			DinnerID:   dinnerID,
			DinnerName: itemDTO.DinnerName,
			StyleID:    styleID,
			StyleName:  itemDTO.StyleName,
			StyleExtra: itemDTO.StyleExtra,
			MenuItemID: menuItemID,
			Quantity:   itemDTO.Quantity,
			BasePrice:  itemDTO.BasePrice,
			UnitPrice:  itemDTO.UnitPrice,
			ItemIndex:  itemDTO.ItemIndex,
			Components: itemDTO.Components,
			Excluded:   itemDTO.Excluded,
			AddOns:     addOns,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return draft.RestoreCart(draft.RestoreCartParams{
		SessionID:  dto.SessionID,
		State:      flow.State(dto.State),
		Items:      items,
		Address:    dto.Address,
		Occasion:   dto.Occasion,
		DeliveryAt: dto.DeliveryAt,
		Memo:       dto.Memo,
		UpdatedAt:  dto.UpdatedAt,
	})
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
