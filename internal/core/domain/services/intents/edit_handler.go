package intents

import (
	"fmt"

	"maitred/internal/core/domain/model/flow"
)

// EditHandler revises an already drafted line: component composition,
// quantity or style. Component edits take priority; a bare quantity
// entity changes the line count; a style entity swaps the style.
type EditHandler struct{}

// NewEditHandler creates the handler.
func NewEditHandler() *EditHandler {
	return &EditHandler{}
}

// Supports serves EDIT_ITEM.
func (h *EditHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentEditItem
}

func (h *EditHandler) Handle(ctx *Context) (Result, error) {
	if len(ctx.Items) == 0 {
		return Result{
			Reply:     "수정할 주문이 없어요. 먼저 디너를 선택해주세요.\n" + dinnerQuestion(ctx),
			NextState: flow.StateSelectingMenu,
		}, nil
	}

	targets, targetErr := resolveEditTargets(ctx)
	if targetErr != "" {
		return Result{Reply: targetErr, NextState: ctx.State}, nil
	}

	// component-level edits win over quantity and style changes
	edited := false
	for _, target := range targets {
		edits := parseComponentEdits(ctx, target)
		if len(edits) == 0 {
			continue
		}
		if ok := applyComponentEdits(ctx, target, edits); !ok {
			return Result{Reply: "구성 변경에 실패했어요. 다시 말씀해주세요.", NextState: ctx.State}, nil
		}
		edited = true
	}
	if edited {
		return Result{
			Reply:     fmt.Sprintf("주문을 수정했어요.\n%s", orderSummary(ctx)),
			NextState: ctx.State,
			Signal:    flow.SignalRefreshDraft,
		}, nil
	}

	if quantity := ctx.Entities.Quantity; quantity > 0 {
		for _, target := range targets {
			if err := target.SetQuantity(quantity); err != nil {
				return Result{Reply: "수량은 1에서 99 사이로 말씀해주세요.", NextState: ctx.State}, nil
			}
		}
		return Result{
			Reply:     fmt.Sprintf("수량을 %d개로 변경했어요.\n%s", quantity, orderSummary(ctx)),
			NextState: ctx.State,
			Signal:    flow.SignalRefreshDraft,
		}, nil
	}

	if styleName := ctx.Entities.StyleName; styleName != "" {
		style, found := ctx.Matcher.FindStyle(styleName)
		if !found {
			return Result{
				Reply:     fmt.Sprintf("\"%s\" 스타일을 찾지 못했어요.", styleName),
				NextState: ctx.State,
			}, nil
		}
		for _, target := range targets {
			if !ctx.Matcher.IsStyleCompatible(target.DinnerName(), style.Name()) {
				return Result{
					Reply:     fmt.Sprintf("%s에는 %s 스타일을 선택할 수 없어요.", target.DinnerName(), style.Name()),
					NextState: ctx.State,
				}, nil
			}
		}
		for _, target := range targets {
			if err := target.ChangeStyle(style); err != nil {
				return Result{Reply: "스타일 변경에 실패했어요.", NextState: ctx.State}, nil
			}
		}
		return Result{
			Reply:     fmt.Sprintf("스타일을 %s(으)로 변경했어요.\n%s", style.Name(), orderSummary(ctx)),
			NextState: ctx.State,
			Signal:    flow.SignalRefreshDraft,
		}, nil
	}

	return Result{
		Reply:     "무엇을 수정할지 말씀해주세요. 구성품, 수량, 스타일을 바꿀 수 있어요.",
		NextState: ctx.State,
	}, nil
}
