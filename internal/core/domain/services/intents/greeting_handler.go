package intents

import (
	"maitred/internal/core/domain/model/flow"
)

// GreetingHandler responds to small talk openers without touching the draft.
type GreetingHandler struct{}

// NewGreetingHandler creates the handler.
func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

// Supports serves GREETING.
func (h *GreetingHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentGreeting
}

func (h *GreetingHandler) Handle(ctx *Context) (Result, error) {
	if len(ctx.Items) > 0 {
		return Result{
			Reply:     "안녕하세요! 주문을 이어서 도와드릴게요.\n" + orderSummary(ctx),
			NextState: ctx.State,
		}, nil
	}
	return Result{
		Reply:     "안녕하세요! 디너 주문을 도와드릴게요. \"주문 시작\"이라고 말씀해주세요.",
		NextState: ctx.State,
	}, nil
}
