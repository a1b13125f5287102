package commands

import (
	"errors"

	"maitred/internal/pkg/guard"
)

// AcceptOrdersCommand triggers acceptance of all newly placed orders.
// This batch operation moves every order in "placed" status to "accepted",
// confirming the kitchen has taken them in.
//
// Example:
//
//	cmd := NewAcceptOrdersCommand()
//	handler := NewAcceptOrdersCommandHandler(uowFactory, logger)
//
//	// Run periodically to pick up new orders
//	ticker := time.NewTicker(30 * time.Second)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Order acceptance failed: %v", err)
//	    }
//	}
type AcceptOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrAcceptOrdersCommandIsNotConstructed = errors.New(
		"AcceptOrdersCommand must be created via NewAcceptOrdersCommand constructor",
	)
)

// NewAcceptOrdersCommand creates a command to trigger order acceptance.
// This is a parameterless command that processes all placed orders.
func NewAcceptOrdersCommand() AcceptOrdersCommand {
	command := AcceptOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrdersCommandIsNotConstructed if validation fails.
func (c *AcceptOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrdersCommandIsNotConstructed)
}
