package intents

import (
	"fmt"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
)

// DinnerHandler serves dinner selection. It owns the two trickiest dispatch
// rules of the conversation:
//
//   - pending-item routing: a style-only or quantity-only utterance while a
//     line is pending completes that line instead of starting a new one;
//   - the new-dinner-while-pending guard: naming another dinner before the
//     pending line is finished is rejected, unless the utterance is an
//     "add another" phrasing, which starts a new line regardless.
type DinnerHandler struct{}

// NewDinnerHandler creates the handler.
func NewDinnerHandler() *DinnerHandler {
	return &DinnerHandler{}
}

// Supports serves SELECT_DINNER.
func (h *DinnerHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentSelectDinner
}

// Handle routes the utterance between the pending line and a new line.
func (h *DinnerHandler) Handle(ctx *Context) (Result, error) {
	entities := ctx.Entities
	pending, hasPending := ctx.PendingItem()

	// style-only or quantity-only utterances complete the pending line
	if hasPending && entities.MenuName == "" {
		if entities.StyleName != "" {
			return applyStyleToPending(ctx, pending, entities.StyleName), nil
		}
		if entities.Quantity > 0 {
			if pending.StyleID() == nil {
				dinner, ok := ctx.Matcher.FindDinner(pending.DinnerName())
				if !ok {
					return Result{
						Reply:     "먼저 스타일을 선택해주세요.",
						NextState: flow.StateSelectingStyle,
					}, nil
				}
				return Result{
					Reply:     styleQuestion(ctx, dinner),
					NextState: flow.StateSelectingStyle,
				}, nil
			}
			return confirmQuantity(ctx, pending, entities.Quantity), nil
		}
	}

	if entities.MenuName == "" {
		return Result{
			Reply:     dinnerQuestion(ctx),
			NextState: flow.StateSelectingMenu,
		}, nil
	}

	addAnother := ctx.Phrases.MatchesAddAnother(ctx.Utterance)
	if hasPending && !addAnother {
		nextState := flow.StateSelectingStyle
		question := "먼저 주문 중인 메뉴를 완성해주세요. 스타일을 선택해주세요."
		if pending.StyleID() != nil {
			nextState = flow.StateSelectingQuantity
			question = "먼저 주문 중인 메뉴를 완성해주세요. 수량을 말씀해주세요."
		}
		return Result{
			Reply:     fmt.Sprintf("%s 주문이 아직 완성되지 않았어요. %s", pending.DinnerName(), question),
			NextState: nextState,
		}, nil
	}

	dinner, ok := ctx.Matcher.FindDinner(entities.MenuName)
	if !ok {
		return Result{
			Reply:     fmt.Sprintf("'%s' 메뉴를 찾지 못했어요.\n%s", entities.MenuName, dinnerQuestion(ctx)),
			NextState: flow.StateSelectingMenu,
		}, nil
	}

	item, err := draft.NewPendingItem(dinner, ctx.NextItemIndex())
	if err != nil {
		return Result{}, err
	}
	ctx.Items = append(ctx.Items, item)

	// an "add another" phrasing starts a fresh line; any quantity in the
	// same utterance refers to the earlier line and is ignored
	if !addAnother {
		if entities.StyleName != "" {
			result := applyStyleToPending(ctx, item, entities.StyleName)
			if item.StyleID() != nil && entities.Quantity > 0 {
				return confirmQuantity(ctx, item, entities.Quantity), nil
			}
			return result, nil
		}
	}

	return Result{
		Reply:     styleQuestion(ctx, dinner),
		NextState: flow.StateSelectingStyle,
	}, nil
}
