package intents

import (
	"fmt"
	"strings"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
)

// RemoveHandler deletes a drafted line picked by ordinal, by the
// "last one" phrasing, or by a fuzzy name match against dinner and
// extra item names.
type RemoveHandler struct{}

// NewRemoveHandler creates the handler.
func NewRemoveHandler() *RemoveHandler {
	return &RemoveHandler{}
}

// Supports serves REMOVE_ITEM.
func (h *RemoveHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentRemoveItem
}

func (h *RemoveHandler) Handle(ctx *Context) (Result, error) {
	if len(ctx.Items) == 0 {
		return Result{
			Reply:     "삭제할 주문이 없어요.\n" + dinnerQuestion(ctx),
			NextState: flow.StateSelectingMenu,
		}, nil
	}

	index, ok := h.pickIndex(ctx)
	if !ok {
		return Result{
			Reply:     "어떤 메뉴를 삭제할지 말씀해주세요. 예: \"2번 빼줘\", \"마지막 거 취소\"",
			NextState: ctx.State,
		}, nil
	}

	removed := ctx.Items[index]
	ctx.Items = append(ctx.Items[:index], ctx.Items[index+1:]...)
	draft.Reindex(ctx.Items)

	name := removed.DinnerName()

	if len(ctx.Items) == 0 {
		return Result{
			Reply:     fmt.Sprintf("%s을(를) 삭제했어요. 주문이 비었습니다.\n%s", name, dinnerQuestion(ctx)),
			NextState: flow.StateSelectingMenu,
			Signal:    flow.SignalRefreshDraft,
		}, nil
	}

	return Result{
		Reply:     fmt.Sprintf("%s을(를) 삭제했어요.\n%s", name, orderSummary(ctx)),
		NextState: flow.StateAskingMore,
		Signal:    flow.SignalRefreshDraft,
	}, nil
}

// pickIndex resolves which line to remove, as a slice index.
func (h *RemoveHandler) pickIndex(ctx *Context) (int, bool) {
	if ctx.Entities.ItemIndex > 0 && ctx.Entities.ItemIndex <= len(ctx.Items) {
		return ctx.Entities.ItemIndex - 1, true
	}
	if n, ok := ctx.Phrases.ExtractOrdinal(ctx.Utterance); ok && n >= 1 && n <= len(ctx.Items) {
		return n - 1, true
	}

	target := ctx.Entities.EffectiveMenuItemName()
	if ctx.Phrases.IsRemoveLast(target) || ctx.Phrases.IsRemoveLast(ctx.Utterance) {
		return len(ctx.Items) - 1, true
	}

	if target != "" {
		query := strings.ToLower(ctx.Matcher.CanonicalComponentName(target))
		for idx, item := range ctx.Items {
			candidate := item.DinnerName()
			if candidate == "" {
				continue
			}
			if strings.Contains(strings.ToLower(candidate), query) ||
				strings.Contains(query, strings.ToLower(candidate)) {
				return idx, true
			}
		}
	}

	// a lone line needs no selector
	if len(ctx.Items) == 1 {
		return 0, true
	}
	return 0, false
}
