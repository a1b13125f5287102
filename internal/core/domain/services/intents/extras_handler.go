package intents

import (
	"fmt"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
)

// ExtrasHandler adds extra menu items (wine, cake, champagne and the like)
// alongside the drafted dinners. When the utterance names a dinner line by
// ordinal the extra is attached to that line; otherwise it becomes a
// standalone line, and repeated additions of the same item merge into one.
// NO_EXTRA_ITEM moves the flow on to the memo step.
type ExtrasHandler struct{}

// NewExtrasHandler creates the handler.
func NewExtrasHandler() *ExtrasHandler {
	return &ExtrasHandler{}
}

// Supports serves ADD_EXTRA_ITEM and NO_EXTRA_ITEM.
func (h *ExtrasHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentAddExtraItem || ctx.Intent == flow.IntentNoExtraItem
}

func (h *ExtrasHandler) Handle(ctx *Context) (Result, error) {
	if ctx.Intent == flow.IntentNoExtraItem {
		return Result{
			Reply:     "요청사항이나 메모가 있으신가요? 없으시면 \"없어요\"라고 말씀해주세요.",
			NextState: flow.StateEnteringMemo,
		}, nil
	}

	name := ctx.Entities.EffectiveMenuItemName()
	if name == "" {
		name = ctx.Utterance
	}

	menuItem, found := ctx.Matcher.FindMenuItem(name)
	if !found {
		return Result{
			Reply:     fmt.Sprintf("\"%s\"은(는) 추가 메뉴에 없어요.\n%s", name, ctx.Matcher.ExtrasListing()),
			NextState: flow.StateSelectingExtras,
		}, nil
	}

	quantity := ctx.Entities.EffectiveQuantity()

	if ordinal := ctx.Entities.ItemIndex; ordinal > 0 {
		target, found := draft.FindByOrdinal(ctx.Items, ordinal)
		if found && !target.IsStandalone() {
			addOn, err := draft.NewAddOn(menuItem, quantity)
			if err != nil {
				return Result{}, err
			}
			if err := target.AddOrMergeAddOn(addOn); err != nil {
				return Result{}, err
			}
			return Result{
				Reply: fmt.Sprintf("%d번 %s에 %s %d개를 곁들였어요. 더 필요한 추가 메뉴가 있으신가요?\n%s",
					ordinal, target.DinnerName(), menuItem.Name(), quantity, orderSummary(ctx)),
				NextState: flow.StateSelectingExtras,
				Signal:    flow.SignalRefreshDraft,
			}, nil
		}
	}

	addition, err := draft.NewStandaloneItem(menuItem, quantity, ctx.NextItemIndex())
	if err != nil {
		return Result{}, err
	}

	merged, err := draft.MergeStandalone(ctx.Items, addition)
	if err != nil {
		return Result{}, err
	}
	ctx.Items = merged
	draft.Reindex(ctx.Items)

	return Result{
		Reply: fmt.Sprintf("%s %d개를 추가했어요. 더 필요한 추가 메뉴가 있으신가요?\n%s",
			menuItem.Name(), quantity, orderSummary(ctx)),
		NextState: flow.StateSelectingExtras,
		Signal:    flow.SignalRefreshDraft,
	}, nil
}
