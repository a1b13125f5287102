// Package intents holds the per-intent turn handlers and the registry
// that dispatches a classified turn to the first handler claiming it.
//
// Handlers are stateless; everything a turn needs travels in a Context,
// which they mutate in place (draft items, delivery details, memo) before
// returning a Result with the reply, the next conversation state and an
// optional UI signal.
package intents
