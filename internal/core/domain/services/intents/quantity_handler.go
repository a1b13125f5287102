package intents

import (
	"fmt"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
)

// QuantityHandler confirms the pending line's quantity. Quantities of two
// or more explode into unit lines so each can be customized on its own.
type QuantityHandler struct{}

// NewQuantityHandler creates the handler.
func NewQuantityHandler() *QuantityHandler {
	return &QuantityHandler{}
}

// Supports serves SET_QUANTITY.
func (h *QuantityHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentSetQuantity
}

// Handle confirms the quantity on the pending line.
func (h *QuantityHandler) Handle(ctx *Context) (Result, error) {
	pending, ok := ctx.PendingItem()
	if !ok {
		return Result{
			Reply:     fmt.Sprintf("수량을 정할 메뉴가 없어요.\n%s", dinnerQuestion(ctx)),
			NextState: flow.StateSelectingMenu,
		}, nil
	}

	if pending.StyleID() == nil {
		reply := "먼저 스타일을 선택해주세요."
		if dinner, found := ctx.Matcher.FindDinner(pending.DinnerName()); found {
			reply = styleQuestion(ctx, dinner)
		}
		return Result{Reply: reply, NextState: flow.StateSelectingStyle}, nil
	}

	quantity := ctx.Entities.Quantity
	if quantity <= 0 {
		return Result{
			Reply:     "몇 개 주문하실지 숫자로 말씀해주세요.",
			NextState: flow.StateSelectingQuantity,
		}, nil
	}

	return confirmQuantity(ctx, pending, quantity), nil
}

// confirmQuantity sets the quantity and applies the explode policy:
// quantity N becomes N unit lines with sequential ordinals.
func confirmQuantity(ctx *Context, item *draft.Item, quantity int) Result {
	if err := item.SetQuantity(quantity); err != nil {
		return Result{
			Reply:     "주문 가능한 수량이 아니에요. 다시 말씀해주세요.",
			NextState: flow.StateSelectingQuantity,
		}
	}

	if quantity >= 2 {
		units := draft.Explode(item)
		replaced := make([]*draft.Item, 0, len(ctx.Items)+len(units)-1)
		for _, existing := range ctx.Items {
			if existing == item {
				replaced = append(replaced, units...)
				continue
			}
			replaced = append(replaced, existing)
		}
		ctx.Items = replaced
		draft.Reindex(ctx.Items)
	}

	return Result{
		Reply:     fmt.Sprintf("%s\n다른 디너도 주문하시겠어요?", orderSummary(ctx)),
		NextState: flow.StateAskingMore,
		Signal:    flow.SignalRefreshDraft,
	}
}
