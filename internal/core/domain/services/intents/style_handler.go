package intents

import (
	"fmt"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
)

// StyleHandler applies a serving style to the pending line.
type StyleHandler struct{}

// NewStyleHandler creates the handler.
func NewStyleHandler() *StyleHandler {
	return &StyleHandler{}
}

// Supports serves SELECT_STYLE.
func (h *StyleHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentSelectStyle
}

// Handle resolves the style and applies it behind the compatibility gate.
func (h *StyleHandler) Handle(ctx *Context) (Result, error) {
	pending, ok := ctx.PendingItem()
	if !ok {
		return Result{
			Reply:     fmt.Sprintf("스타일을 적용할 메뉴가 없어요.\n%s", dinnerQuestion(ctx)),
			NextState: flow.StateSelectingMenu,
		}, nil
	}

	styleName := ctx.Entities.StyleName
	if styleName == "" {
		styleName = ctx.Utterance
	}
	return applyStyleToPending(ctx, pending, styleName), nil
}

// applyStyleToPending resolves and applies a style to the given line.
// The compatibility gate runs first: an excluded style is rejected with an
// explanation, the draft is left untouched and the state stays at style
// selection.
func applyStyleToPending(ctx *Context, item *draft.Item, styleName string) Result {
	style, ok := ctx.Matcher.FindStyle(styleName)
	if !ok {
		reply := fmt.Sprintf("'%s' 스타일을 찾지 못했어요.", styleName)
		if dinner, found := ctx.Matcher.FindDinner(item.DinnerName()); found {
			reply += "\n" + styleQuestion(ctx, dinner)
		}
		return Result{Reply: reply, NextState: flow.StateSelectingStyle}
	}

	if !ctx.Matcher.IsStyleCompatible(item.DinnerName(), style.Name()) {
		reply := fmt.Sprintf("%s에는 %s 스타일을 선택할 수 없어요.", item.DinnerName(), style.Name())
		if dinner, found := ctx.Matcher.FindDinner(item.DinnerName()); found {
			reply += "\n" + styleQuestion(ctx, dinner)
		}
		return Result{Reply: reply, NextState: flow.StateSelectingStyle}
	}

	if err := item.ApplyStyle(style); err != nil {
		return Result{
			Reply:     "스타일을 적용하지 못했어요. 다시 말씀해주세요.",
			NextState: flow.StateSelectingStyle,
		}
	}

	if item.Quantity() == 0 {
		question := fmt.Sprintf("%s 스타일로 선택하셨어요. ", style.Name())
		if dinner, found := ctx.Matcher.FindDinner(item.DinnerName()); found {
			question += quantityQuestion(dinner)
		} else {
			question += "몇 개 주문하시겠어요?"
		}
		return Result{Reply: question, NextState: flow.StateSelectingQuantity}
	}

	return Result{
		Reply:     fmt.Sprintf("스타일을 %s로 변경했어요.\n%s", style.Name(), orderSummary(ctx)),
		NextState: flow.StateAskingMore,
		Signal:    flow.SignalRefreshDraft,
	}
}
