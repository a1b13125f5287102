// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Rows are indexed by status for the acceptance job and carry a unique
// customer-facing order number.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number     string    `gorm:"uniqueIndex;size:16"`
	Address    string
	DeliveryAt time.Time
	Occasion   string
	Memo       string
	GrandTotal int
	Status     int            `gorm:"index"`
	PlacedAt   time.Time
	Lines      []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one priced row of an order. Dinner rows carry
// dinner and style references; extra item rows carry a menu item
// reference. Component adjustments are stored as JSON documents.
type OrderLineDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	Position   int
	DinnerID   *uuid.UUID `gorm:"type:uuid"`
	StyleID    *uuid.UUID `gorm:"type:uuid"`
	MenuItemID *uuid.UUID `gorm:"type:uuid"`
	Name       string
	StyleName  string
	Quantity   int
	UnitPrice  int
	TotalPrice int
	Excluded   []string       `gorm:"serializer:json"`
	Components map[string]int `gorm:"serializer:json"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:         uuid.New(),
			OrderID:    aggregate.ID().Bytes(),
			Position:   i,
			DinnerID:   optionalUUID(line.DinnerID()),
			StyleID:    optionalUUID(line.StyleID()),
			MenuItemID: optionalUUID(line.MenuItemID()),
			Name:       line.Name(),
			StyleName:  line.StyleName(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
			TotalPrice: line.TotalPrice(),
			Excluded:   line.Excluded(),
			Components: line.ComponentQuantities(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Number:     aggregate.Number(),
		Address:    aggregate.Address(),
		DeliveryAt: aggregate.DeliveryAt(),
		Occasion:   aggregate.Occasion(),
		Memo:       aggregate.Memo(),
		GrandTotal: aggregate.GrandTotal(),
		Status:     int(aggregate.Status()),
		PlacedAt:   aggregate.PlacedAt(),
		Lines:      lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		dinnerID, err := optionalKernelUUID(lineDTO.DinnerID)
		if err != nil {
			return nil, err
		}
		styleID, err := optionalKernelUUID(lineDTO.StyleID)
		if err != nil {
			return nil, err
		}
		menuItemID, err := optionalKernelUUID(lineDTO.MenuItemID)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(order.NewLineParams{
			DinnerID:   dinnerID,
			StyleID:    styleID,
			MenuItemID: menuItemID,
			Name:       lineDTO.Name,
			StyleName:  lineDTO.StyleName,
			Quantity:   lineDTO.Quantity,
			UnitPrice:  lineDTO.UnitPrice,
			Excluded:   lineDTO.Excluded,
			Components: lineDTO.Components,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:         id,
		Number:     dto.Number,
		Address:    dto.Address,
		DeliveryAt: dto.DeliveryAt,
		Occasion:   dto.Occasion,
		Memo:       dto.Memo,
		Lines:      lines,
		Status:     order.Status(dto.Status),
		PlacedAt:   dto.PlacedAt,
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
