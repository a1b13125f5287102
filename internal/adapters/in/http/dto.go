package http

import (
	"time"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/core/ports"
)

// ChatRequest is the request body of the assistant chat endpoint.
// The client carries the whole conversation state: the draft rows, the
// flow state and the recent history all round-trip through it.
type ChatRequest struct {
	SessionID string `json:"sessionId"`

	Message     string `json:"message,omitempty"`
	AudioBase64 string `json:"audioBase64,omitempty"`
	AudioFormat string `json:"audioFormat,omitempty"`

	FlowState    string         `json:"flowState,omitempty"`
	CurrentOrder []OrderItemDTO `json:"currentOrder,omitempty"`

	SelectedAddress       string     `json:"selectedAddress,omitempty"`
	KnownAddresses        []string   `json:"knownAddresses,omitempty"`
	OccasionType          string     `json:"occasionType,omitempty"`
	RequestedDeliveryTime *time.Time `json:"requestedDeliveryTime,omitempty"`
	Memo                  string     `json:"memo,omitempty"`

	ConversationHistory []HistoryEntryDTO `json:"conversationHistory,omitempty"`
}

// ChatResponse is the response body of the assistant chat endpoint.
type ChatResponse struct {
	Reply     string `json:"reply"`
	FlowState string `json:"flowState"`
	UIAction  string `json:"uiAction"`
	Intent    string `json:"intent"`
	Utterance string `json:"utterance"`

	CurrentOrder []OrderItemDTO `json:"currentOrder"`
	TotalPrice   int            `json:"totalPrice"`

	SelectedAddress       string     `json:"selectedAddress,omitempty"`
	OccasionType          string     `json:"occasionType,omitempty"`
	RequestedDeliveryTime *time.Time `json:"requestedDeliveryTime,omitempty"`
	Memo                  string     `json:"memo,omitempty"`
}

// HistoryEntryDTO is one prior exchange of the conversation.
type HistoryEntryDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OrderItemDTO is the wire shape of one draft row. Prices are carried
// verbatim so a row survives the round trip unchanged even if the
// catalog is reloaded in between.
type OrderItemDTO struct {
	DinnerID   string         `json:"dinnerId,omitempty"`
	DinnerName string         `json:"dinnerName,omitempty"`
	StyleID    string         `json:"styleId,omitempty"`
	StyleName  string         `json:"styleName,omitempty"`
	StyleExtra int            `json:"styleExtra,omitempty"`
	MenuItemID string         `json:"menuItemId,omitempty"`
	Quantity   int            `json:"quantity"`
	BasePrice  int            `json:"basePrice"`
	UnitPrice  int            `json:"unitPrice"`
	TotalPrice int            `json:"totalPrice"`
	ItemIndex  int            `json:"itemIndex"`
	Components map[string]int `json:"components,omitempty"`
	Excluded   []string       `json:"excluded,omitempty"`
	AddOns     []AddOnDTO     `json:"addOns,omitempty"`
}

// AddOnDTO is the wire shape of one attachment on a draft row.
type AddOnDTO struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unitPrice"`
}

// CheckoutRequest is the request body of the checkout endpoint.
type CheckoutRequest struct {
	SessionID             string         `json:"sessionId"`
	Address               string         `json:"address"`
	RequestedDeliveryTime *time.Time     `json:"requestedDeliveryTime,omitempty"`
	OccasionType          string         `json:"occasionType,omitempty"`
	Memo                  string         `json:"memo,omitempty"`
	CurrentOrder          []OrderItemDTO `json:"currentOrder"`
}

// CheckoutResponse is the response body of a successful checkout.
type CheckoutResponse struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	GrandTotal  int    `json:"grandTotal"`
}

// ActiveOrderResponse is one row of the active order listing.
type ActiveOrderResponse struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	Address    string    `json:"address"`
	GrandTotal int       `json:"grandTotal"`
	Status     string    `json:"status"`
	PlacedAt   time.Time `json:"placedAt"`
}

// MenuResponse is the menu listing body.
type MenuResponse struct {
	Dinners    []MenuDinnerDTO `json:"dinners"`
	Styles     []MenuStyleDTO  `json:"styles"`
	ExtraItems []MenuItemDTO   `json:"extraItems"`
}

// MenuDinnerDTO is one dinner row of the menu listing.
type MenuDinnerDTO struct {
	Name      string `json:"name"`
	LocalName string `json:"localName"`
	BasePrice int    `json:"basePrice"`
}

// MenuStyleDTO is one serving style row of the menu listing.
type MenuStyleDTO struct {
	Name       string `json:"name"`
	LocalName  string `json:"localName"`
	ExtraPrice int    `json:"extraPrice"`
}

// MenuItemDTO is one extra item row of the menu listing.
type MenuItemDTO struct {
	Name      string `json:"name"`
	LocalName string `json:"localName"`
	Category  string `json:"category"`
	UnitPrice int    `json:"unitPrice"`
}

// Error is the error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func historyFromDTO(entries []HistoryEntryDTO) []ports.HistoryEntry {
	history := make([]ports.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, ports.HistoryEntry{Role: entry.Role, Content: entry.Content})
	}
	return history
}

func itemsFromDTO(dtos []OrderItemDTO) ([]*draft.Item, error) {
	items := make([]*draft.Item, 0, len(dtos))
	for _, dto := range dtos {
		dinnerID, err := optionalUUID(dto.DinnerID)
		if err != nil {
			return nil, err
		}
		styleID, err := optionalUUID(dto.StyleID)
		if err != nil {
			return nil, err
		}
		menuItemID, err := optionalUUID(dto.MenuItemID)
		if err != nil {
			return nil, err
		}

		addOns := make([]draft.AddOn, 0, len(dto.AddOns))
		for _, addOnDTO := range dto.AddOns {
			addOnID, err := kernel.UUIDFromString(addOnDTO.MenuItemID)
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
			DinnerName: dto.DinnerName,
			StyleID:    styleID,
			StyleName:  dto.StyleName,
			StyleExtra: dto.StyleExtra,
			MenuItemID: menuItemID,
			Quantity:   dto.Quantity,
			BasePrice:  dto.BasePrice,
			UnitPrice:  dto.UnitPrice,
			ItemIndex:  dto.ItemIndex,
			Components: dto.Components,
			Excluded:   dto.Excluded,
			AddOns:     addOns,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func itemsToDTO(items []*draft.Item) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		addOns := make([]AddOnDTO, 0, len(item.AddOns()))
		for _, addOn := range item.AddOns() {
			addOns = append(addOns, AddOnDTO{
				MenuItemID: addOn.MenuItemID().String(),
				Name:       addOn.Name(),
				Quantity:   addOn.Quantity(),
				UnitPrice:  addOn.UnitPrice(),
			})
		}

		dtos = append(dtos, OrderItemDTO{
			DinnerID:   uuidString(item.DinnerID()),
			DinnerName: item.DinnerName(),
			StyleID:    uuidString(item.StyleID()),
			StyleName:  item.StyleName(),
			StyleExtra: item.StyleExtra(),
			MenuItemID: uuidString(item.MenuItemID()),
			Quantity:   item.Quantity(),
			BasePrice:  item.BasePrice(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
			ItemIndex:  item.ItemIndex(),
			Components: item.ComponentOverrides(),
			Excluded:   item.ExcludedComponents(),
			AddOns:     addOns,
		})
	}
	return dtos
}

func optionalUUID(s string) (*kernel.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func uuidString(id *kernel.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
