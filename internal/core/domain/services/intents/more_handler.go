package intents

import (
	"fmt"

	"maitred/internal/core/domain/model/flow"
)

// MoreDinnerHandler answers the "another dinner?" question.
type MoreDinnerHandler struct{}

// NewMoreDinnerHandler creates the handler.
func NewMoreDinnerHandler() *MoreDinnerHandler {
	return &MoreDinnerHandler{}
}

// Supports serves ADD_MORE_DINNER and NO_MORE_DINNER.
func (h *MoreDinnerHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentAddMoreDinner || ctx.Intent == flow.IntentNoMoreDinner
}

// Handle loops back to menu selection or moves on to customization.
func (h *MoreDinnerHandler) Handle(ctx *Context) (Result, error) {
	if ctx.Intent == flow.IntentAddMoreDinner {
		// a dinner named in the same breath goes straight through selection
		if ctx.Entities.MenuName != "" {
			return NewDinnerHandler().Handle(ctx)
		}
		return Result{
			Reply:     dinnerQuestion(ctx),
			NextState: flow.StateSelectingMenu,
		}, nil
	}

	return Result{
		Reply:     fmt.Sprintf("메뉴 구성을 변경하시겠어요? 구성품을 빼거나 추가할 수 있어요.\n%s", orderSummary(ctx)),
		NextState: flow.StateCustomizing,
	}, nil
}
