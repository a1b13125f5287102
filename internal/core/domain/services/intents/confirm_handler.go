package intents

import (
	"fmt"

	"maitred/internal/core/domain/model/flow"
)

// ConfirmHandler interprets bare YES and NO answers, whose meaning
// depends entirely on the question the flow just asked.
type ConfirmHandler struct{}

// NewConfirmHandler creates the handler.
func NewConfirmHandler() *ConfirmHandler {
	return &ConfirmHandler{}
}

// Supports serves YES and NO.
func (h *ConfirmHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentYes || ctx.Intent == flow.IntentNo
}

func (h *ConfirmHandler) Handle(ctx *Context) (Result, error) {
	yes := ctx.Intent == flow.IntentYes

	switch ctx.State {
	case flow.StateAskingMore:
		if yes {
			return Result{Reply: dinnerQuestion(ctx), NextState: flow.StateSelectingMenu}, nil
		}
		return Result{
			Reply:     fmt.Sprintf("메뉴 구성을 변경하시겠어요? 구성품을 빼거나 추가할 수 있어요.\n%s", orderSummary(ctx)),
			NextState: flow.StateCustomizing,
		}, nil

	case flow.StateCustomizing:
		if yes {
			return Result{
				Reply:     "어떤 구성품을 변경할까요? 예: \"와인 2개로 해줘\", \"샐러드 빼줘\"",
				NextState: flow.StateCustomizing,
			}, nil
		}
		return Result{Reply: extrasQuestion(ctx), NextState: flow.StateSelectingExtras}, nil

	case flow.StateSelectingExtras:
		if yes {
			return Result{
				Reply:     "어떤 추가 메뉴를 드릴까요?\n" + ctx.Matcher.ExtrasListing(),
				NextState: flow.StateSelectingExtras,
			}, nil
		}
		return Result{
			Reply:     "요청사항이나 메모가 있으신가요? 없으시면 \"없어요\"라고 말씀해주세요.",
			NextState: flow.StateEnteringMemo,
		}, nil

	case flow.StateEnteringMemo:
		if yes {
			return Result{Reply: "남기실 메모를 말씀해주세요.", NextState: flow.StateEnteringMemo}, nil
		}
		return Result{
			Reply:     "주문 내용을 확인해주세요.\n" + orderSummary(ctx) + "\n이대로 주문할까요?",
			NextState: flow.StateConfirming,
			Signal:    flow.SignalShowConfirm,
		}, nil

	case flow.StateConfirming:
		if yes {
			return NewCheckoutGateHandler().Handle(ctx)
		}
		return Result{
			Reply:     "무엇을 수정할까요? 메뉴 추가, 구성 변경, 삭제 모두 가능해요.\n" + orderSummary(ctx),
			NextState: flow.StateAskingMore,
		}, nil
	}

	if yes && ctx.State == flow.StateIdle {
		return NewStartHandler().Handle(ctx)
	}

	return Result{
		Reply:     "잘 이해하지 못했어요. 다시 말씀해주세요.",
		NextState: ctx.State,
	}, nil
}
