package intents

import (
	"maitred/internal/core/domain/model/flow"
)

// CancelHandler abandons the whole draft and returns the flow to rest.
type CancelHandler struct{}

// NewCancelHandler creates the handler.
func NewCancelHandler() *CancelHandler {
	return &CancelHandler{}
}

// Supports serves CANCEL.
func (h *CancelHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentCancel
}

func (h *CancelHandler) Handle(ctx *Context) (Result, error) {
	hadItems := len(ctx.Items) > 0
	ctx.Items = nil
	ctx.Memo = ""
	ctx.Occasion = ""
	ctx.DeliveryTime = nil

	reply := "진행 중인 주문이 없어요."
	if hadItems {
		reply = "주문을 취소했어요. 다시 주문하시려면 언제든 말씀해주세요."
	}

	return Result{
		Reply:     reply,
		NextState: flow.StateIdle,
		Signal:    flow.SignalShowCancelConfirm,
	}, nil
}
