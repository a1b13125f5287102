package intents

import (
	"time"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/services"
)

// Entities is the structured output the classifier extracted from the
// utterance. All fields are optional; zero values mean "not mentioned".
type Entities struct {
	MenuName         string `json:"menuName,omitempty"`
	StyleName        string `json:"styleName,omitempty"`
	Quantity         int    `json:"quantity,omitempty"`
	AddressIndex     int    `json:"addressIndex,omitempty"`
	MenuItemName     string `json:"menuItemName,omitempty"`
	Item             string `json:"item,omitempty"`
	Action           string `json:"action,omitempty"`
	MenuItemQuantity int    `json:"menuItemQuantity,omitempty"`
	ItemIndex        int    `json:"itemIndex,omitempty"`
	Memo             string `json:"memo,omitempty"`
	OccasionType     string `json:"occasionType,omitempty"`
	DeliveryDate     string `json:"deliveryDate,omitempty"`
	DeliveryTime     string `json:"deliveryTime,omitempty"`
}

// EffectiveMenuItemName returns the best available name for an extra item:
// the dedicated field first, then the edit target, then the menu name.
func (e Entities) EffectiveMenuItemName() string {
	if e.MenuItemName != "" {
		return e.MenuItemName
	}
	if e.Item != "" {
		return e.Item
	}
	return e.MenuName
}

// EffectiveQuantity returns the extra item quantity: quantity first, then
// menuItemQuantity, then 1.
func (e Entities) EffectiveQuantity() int {
	if e.Quantity > 0 {
		return e.Quantity
	}
	if e.MenuItemQuantity > 0 {
		return e.MenuItemQuantity
	}
	return 1
}

// Context is the request-scoped state one conversation turn operates on.
// Handlers mutate the draft and the order-level fields in place; the
// orchestrator assembles the response from the mutated Context plus the
// handler's Result.
//
// The Context owns its draft exclusively for the duration of the turn.
type Context struct {
	Utterance string
	Intent    flow.Intent
	Entities  Entities

	// ClassifierReply is the reply text the classifier suggested; info
	// style handlers pass it through when they have nothing better.
	ClassifierReply string

	State flow.State

	Items []*draft.Item

	SelectedAddress string
	KnownAddresses  []string

	Occasion     string
	DeliveryTime *time.Time
	Memo         string

	// Now anchors relative date parsing for the turn
	Now time.Time

	Matcher *services.Matcher
	Phrases *services.Phrasebook
}

// PendingItem returns the draft line still awaiting style or quantity.
func (c *Context) PendingItem() (*draft.Item, bool) {
	return draft.FindPending(c.Items)
}

// TotalPrice returns the current draft total.
func (c *Context) TotalPrice() int {
	return draft.TotalOrderPrice(c.Items)
}

// NextItemIndex returns the display ordinal for a newly appended line.
func (c *Context) NextItemIndex() int {
	return len(c.Items) + 1
}
