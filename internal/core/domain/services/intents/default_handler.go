package intents

import (
	"maitred/internal/core/domain/model/flow"
)

// DefaultHandler is the fallback when no registered handler claims the
// turn. It keeps the current state so the user can simply rephrase.
type DefaultHandler struct{}

// NewDefaultHandler creates the fallback handler.
func NewDefaultHandler() *DefaultHandler {
	return &DefaultHandler{}
}

// Supports always claims the turn; the registry consults it last.
func (h *DefaultHandler) Supports(ctx *Context) bool {
	return true
}

func (h *DefaultHandler) Handle(ctx *Context) (Result, error) {
	if ctx.State == flow.StateIdle {
		return Result{
			Reply:     "잘 이해하지 못했어요. 주문을 시작하시려면 \"주문 시작\"이라고 말씀해주세요.",
			NextState: flow.StateIdle,
		}, nil
	}
	return Result{
		Reply:     "잘 이해하지 못했어요. 다시 한 번 말씀해주세요.",
		NextState: ctx.State,
	}, nil
}
