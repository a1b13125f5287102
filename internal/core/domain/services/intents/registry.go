package intents

import (
	"maitred/internal/core/domain/model/flow"
)

// Result is what a handler produces for one turn: the reply to speak, the
// state the conversation moves to, and the UI signal for the client.
// Draft and order-level changes are made on the Context directly.
type Result struct {
	Reply     string
	NextState flow.State
	Signal    flow.UISignal
}

// Handler processes the intents it declares support for.
// Handlers are stateless; all per-turn data lives on the Context.
type Handler interface {
	// Supports reports whether this handler serves the intent in the
	// context. Most handlers key on Intent alone; some also look at State.
	Supports(ctx *Context) bool

	// Handle applies the intent to the context and produces the turn result.
	Handle(ctx *Context) (Result, error)
}

// Registry dispatches a turn to the first handler that supports it,
// scanning in registration order. A terminal default handler guarantees
// every turn gets a response.
type Registry struct {
	handlers []Handler
	fallback Handler
}

// NewRegistry creates a Registry over an ordered handler list.
func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{
		handlers: handlers,
		fallback: NewDefaultHandler(),
	}
}

// Dispatch routes the turn to the first supporting handler.
func (r *Registry) Dispatch(ctx *Context) (Result, error) {
	for _, handler := range r.handlers {
		if handler.Supports(ctx) {
			return handler.Handle(ctx)
		}
	}
	return r.fallback.Handle(ctx)
}

// DefaultRegistry wires the full handler chain in dispatch order.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewStartHandler(),
		NewAddressHandler(),
		NewOccasionHandler(),
		NewDinnerHandler(),
		NewStyleHandler(),
		NewQuantityHandler(),
		NewMoreDinnerHandler(),
		NewCustomizeHandler(),
		NewEditHandler(),
		NewRemoveHandler(),
		NewExtrasHandler(),
		NewMemoHandler(),
		NewConfirmHandler(),
		NewCheckoutGateHandler(),
		NewCancelHandler(),
		NewInfoHandler(),
		NewGreetingHandler(),
	)
}
