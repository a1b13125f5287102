package intents

import (
	"maitred/internal/core/domain/model/flow"
)

// MemoHandler records a free-form delivery memo or skips it, then shows
// the final confirmation summary.
type MemoHandler struct{}

// NewMemoHandler creates the handler.
func NewMemoHandler() *MemoHandler {
	return &MemoHandler{}
}

// Supports serves SET_MEMO and NO_MEMO.
func (h *MemoHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentSetMemo || ctx.Intent == flow.IntentNoMemo
}

func (h *MemoHandler) Handle(ctx *Context) (Result, error) {
	if ctx.Intent == flow.IntentSetMemo {
		memo := ctx.Entities.Memo
		if memo == "" {
			memo = ctx.Utterance
		}
		ctx.Memo = memo
	}

	reply := "주문 내용을 확인해주세요.\n" + orderSummary(ctx) +
		"\n이대로 주문할까요?"
	if ctx.Intent == flow.IntentSetMemo {
		reply = "메모를 남겼어요.\n" + reply
	}

	return Result{
		Reply:     reply,
		NextState: flow.StateConfirming,
		Signal:    flow.SignalShowConfirm,
	}, nil
}
