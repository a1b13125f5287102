package commands

import (
	"errors"
	"strings"
	"time"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// CheckoutParams carries the draft a session wants to turn into an order.
type CheckoutParams struct {
	SessionID string
	Address   string

	// DeliveryAt nil falls back to tomorrow evening.
	DeliveryAt *time.Time
	Occasion   string
	Memo       string

	Items []*draft.Item

	// Now anchors the delivery fallback; the zero value means time.Now.
	Now time.Time
}

// CheckoutCommand represents a request to reconcile the session draft into
// a placed order.
//
// Checkout is not idempotent: submitting the same draft twice places two
// orders.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	params CheckoutParams

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. The session id and the
// delivery address are required; an empty draft is a business failure
// reported by the handler, not a constructor error.
func NewCheckoutCommand(params CheckoutParams) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(params.SessionID),
		cmd.setAddress(params.Address),
	); err != nil {
		return CheckoutCommand{}, err
	}

	if params.Now.IsZero() {
		params.Now = time.Now()
	}
	cmd.params = params
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Params returns the checkout payload.
func (c CheckoutCommand) Params() CheckoutParams {
	return c.params
}

func (c *CheckoutCommand) setSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionIDIsRequired
	}
	return nil
}

func (c *CheckoutCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	return nil
}
