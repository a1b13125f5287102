package draft

import (
	"errors"
	"strings"
	"time"

	"maitred/internal/core/domain/model/flow"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart factory method.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the persisted conversation state of one ordering session: the
// draft lines plus everything the flow has collected so far. The request
// payload stays the source of truth for a turn; the cart is a write-through
// copy saved after each turn so a session survives client restarts.
type Cart struct {
	sessionID string

	state flow.State
	items []*Item

	address    string
	occasion   string
	deliveryAt *time.Time
	memo       string

	updatedAt time.Time

	isConstructed bool
}

// NewCart creates the session cart. The session id must be non-empty;
// everything else may be zero for a fresh session.
func NewCart(sessionID string) (*Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.New("sessionID is required")
	}
	return &Cart{
		sessionID:     sessionID,
		state:         flow.StateIdle,
		isConstructed: true,
	}, nil
}

// RestoreCartParams carries a persisted cart back into the domain.
type RestoreCartParams struct {
	SessionID  string
	State      flow.State
	Items      []*Item
	Address    string
	Occasion   string
	DeliveryAt *time.Time
	Memo       string
	UpdatedAt  time.Time
}

// RestoreCart rebuilds a session cart from persistence.
func RestoreCart(params RestoreCartParams) (*Cart, error) {
	cart, err := NewCart(params.SessionID)
	if err != nil {
		return nil, err
	}
	cart.state = params.State
	cart.items = params.Items
	cart.address = params.Address
	cart.occasion = params.Occasion
	cart.deliveryAt = params.DeliveryAt
	cart.memo = params.Memo
	cart.updatedAt = params.UpdatedAt
	return cart, nil
}

// Validate ensures the Cart was created through a factory method.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// SessionID returns the owning session's identifier.
func (c *Cart) SessionID() string {
	return c.sessionID
}

// State returns the conversation state the session last reached.
func (c *Cart) State() flow.State {
	return c.state
}

// Items returns the draft lines.
func (c *Cart) Items() []*Item {
	return c.items
}

// Address returns the selected delivery address.
func (c *Cart) Address() string {
	return c.address
}

// Occasion returns the captured occasion.
func (c *Cart) Occasion() string {
	return c.occasion
}

// DeliveryAt returns the requested delivery time, nil when not set.
func (c *Cart) DeliveryAt() *time.Time {
	return c.deliveryAt
}

// Memo returns the delivery memo.
func (c *Cart) Memo() string {
	return c.memo
}

// UpdatedAt returns when the cart last changed.
func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

// TotalPrice returns the draft total of the stored lines.
func (c *Cart) TotalPrice() int {
	return TotalOrderPrice(c.items)
}

// ApplyTurnParams is the post-turn session state to record.
type ApplyTurnParams struct {
	State      flow.State
	Items      []*Item
	Address    string
	Occasion   string
	DeliveryAt *time.Time
	Memo       string
	At         time.Time
}

// ApplyTurn overwrites the cart with the state a finished turn produced.
func (c *Cart) ApplyTurn(params ApplyTurnParams) {
	c.state = params.State
	c.items = params.Items
	c.address = params.Address
	c.occasion = params.Occasion
	c.deliveryAt = params.DeliveryAt
	c.memo = params.Memo
	c.updatedAt = params.At
}
