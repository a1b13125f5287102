package intents

import (
	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
)

// CheckoutGateHandler verifies the draft is ready for payment. Pending
// lines are dropped here; an empty draft never reaches checkout.
type CheckoutGateHandler struct{}

// NewCheckoutGateHandler creates the handler.
func NewCheckoutGateHandler() *CheckoutGateHandler {
	return &CheckoutGateHandler{}
}

// Supports serves CHECKOUT.
func (h *CheckoutGateHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentCheckout
}

func (h *CheckoutGateHandler) Handle(ctx *Context) (Result, error) {
	completed := draft.StripPending(ctx.Items)
	if len(completed) == 0 {
		return Result{
			Reply:     "완성된 주문이 없어요. 디너를 먼저 선택해주세요.\n" + dinnerQuestion(ctx),
			NextState: flow.StateSelectingMenu,
		}, nil
	}

	ctx.Items = completed
	draft.Reindex(ctx.Items)

	return Result{
		Reply:     "주문을 접수할게요. 결제 화면으로 이동합니다.\n" + orderSummary(ctx),
		NextState: flow.StateCheckoutReady,
		Signal:    flow.SignalProceedToCheckout,
	}, nil
}
