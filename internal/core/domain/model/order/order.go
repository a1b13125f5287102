package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when checkout produces an order without
	// a single completed row.
	ErrOrderHasNoLines = errors.New("order must have at least one line")
)

// Order represents a placed dinner order. It is the aggregate root produced
// by checkout and managed through the fulfillment lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and an order number
//   - Must have a delivery address and a delivery time
//   - Must have at least one line
//   - grandTotal always equals the sum of the line totals
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-facing order number shown to the customer
	number string

	address    string
	deliveryAt time.Time
	occasion   string
	memo       string

	lines []Line

	// grandTotal is the sum of the line totals
	grandTotal int

	// status represents the current state in the fulfillment lifecycle
	status Status

	placedAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrderParams carries everything checkout reconciled for the order.
type NewOrderParams struct {
	ID         kernel.UUID
	Address    string
	DeliveryAt time.Time
	Occasion   string
	Memo       string
	Lines      []Line
	PlacedAt   time.Time
}

// NewOrder creates a new Order in Placed status. This is the only way to
// create a valid Order, ensuring all business invariants are maintained.
// The order number is derived from the id; the grand total is derived from
// the lines.
func NewOrder(params NewOrderParams) (*Order, error) {
	order := &Order{
		status:        Placed,
		deliveryAt:    params.DeliveryAt,
		occasion:      params.Occasion,
		memo:          params.Memo,
		placedAt:      params.PlacedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setAddress(params.Address),
		order.setLines(params.Lines),
	); err != nil {
		return nil, err
	}

	order.number = NumberFromID(params.ID)
	return order, nil
}

// RestoreOrderParams carries a persisted order back into the domain.
type RestoreOrderParams struct {
	ID         kernel.UUID
	Number     string
	Address    string
	DeliveryAt time.Time
	Occasion   string
	Memo       string
	Lines      []Line
	Status     Status
	PlacedAt   time.Time
}

// RestoreOrder rebuilds an Order from persistence, keeping the stored
// number and status.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order, err := NewOrder(NewOrderParams{
		ID:         params.ID,
		Address:    params.Address,
		DeliveryAt: params.DeliveryAt,
		Occasion:   params.Occasion,
		Memo:       params.Memo,
		Lines:      params.Lines,
		PlacedAt:   params.PlacedAt,
	})
	if err != nil {
		return nil, err
	}

	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	order.status = params.Status
	if params.Number != "" {
		order.number = params.Number
	}
	return order, nil
}

// NumberFromID derives the customer-facing order number from the order id:
// "ORD-" plus the first eight hex digits of the id, uppercased.
func NumberFromID(id kernel.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("ORD-%s", strings.ToUpper(compact[:8]))
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the customer-facing order number.
func (o *Order) Number() string {
	return o.number
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// DeliveryAt returns the requested delivery time.
func (o *Order) DeliveryAt() time.Time {
	return o.deliveryAt
}

// Occasion returns the occasion the order celebrates.
func (o *Order) Occasion() string {
	return o.occasion
}

// Memo returns the free-form delivery memo.
func (o *Order) Memo() string {
	return o.memo
}

// Lines returns the persisted order rows.
func (o *Order) Lines() []Line {
	return o.lines
}

// GrandTotal returns the sum of the line totals.
func (o *Order) GrandTotal() int {
	return o.grandTotal
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns when the order was placed.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Accept moves the order into preparation.
//
// Returns an error if the order is not in Placed status.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered.
//
// Returns an error if the order is not in Accepted status.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel withdraws a placed order.
//
// Returns an error if preparation has already started.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setAddress validates and sets the delivery address.
// This is a private method used only during construction.
func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// setLines validates the rows and derives the grand total.
// This is a private method used only during construction.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	total := 0
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		total += line.TotalPrice()
	}

	o.lines = lines
	o.grandTotal = total
	return nil
}
