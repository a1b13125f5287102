package intents

import (
	"fmt"

	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/services"
)

// StartHandler opens an order conversation. Before anything else it runs
// the address pre-check: without a selected address the user is routed to
// address selection, and with no known addresses at all the conversation
// stays idle with guidance. Occasion and delivery time entities spoken in
// the opening utterance are captured immediately.
type StartHandler struct{}

// NewStartHandler creates the handler.
func NewStartHandler() *StartHandler {
	return &StartHandler{}
}

// Supports serves START and GREETING-with-order entities.
func (h *StartHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentStart
}

// Handle runs the address pre-check and captures opening entities.
func (h *StartHandler) Handle(ctx *Context) (Result, error) {
	if ctx.SelectedAddress == "" {
		if len(ctx.KnownAddresses) == 0 {
			return Result{
				Reply:     "주문을 시작하려면 먼저 배달 주소를 등록해주세요.",
				NextState: flow.StateIdle,
			}, nil
		}
		return Result{
			Reply:     addressListing(ctx.KnownAddresses),
			NextState: flow.StateSelectingAddress,
		}, nil
	}

	if ctx.Entities.OccasionType != "" {
		ctx.Occasion = ctx.Entities.OccasionType
	}
	if moment, ok := services.ResolveDeliveryMoment(ctx.Entities.DeliveryDate, ctx.Entities.DeliveryTime, ctx.Now); ok {
		ctx.DeliveryTime = &moment
	}

	if ctx.Occasion == "" {
		return Result{
			Reply:     "어떤 기념일을 위한 주문인가요? (발렌타인, 생일, 기념일 등)",
			NextState: flow.StateAskingOccasion,
		}, nil
	}
	if ctx.DeliveryTime == nil {
		return Result{
			Reply:     "언제 배달받으시겠어요? 날짜와 시간을 말씀해주세요.",
			NextState: flow.StateAskingDeliveryTime,
		}, nil
	}

	return Result{
		Reply:     dinnerQuestion(ctx),
		NextState: flow.StateSelectingMenu,
	}, nil
}

// AddressHandler resolves a 1-based address choice from the known list.
type AddressHandler struct{}

// NewAddressHandler creates the handler.
func NewAddressHandler() *AddressHandler {
	return &AddressHandler{}
}

// Supports serves SELECT_ADDRESS.
func (h *AddressHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentSelectAddress
}

// Handle picks the address by index, keeping the state on out-of-range.
func (h *AddressHandler) Handle(ctx *Context) (Result, error) {
	index := ctx.Entities.AddressIndex
	if index < 1 || index > len(ctx.KnownAddresses) {
		return Result{
			Reply:     fmt.Sprintf("1~%d 사이의 번호로 선택해주세요.", len(ctx.KnownAddresses)),
			NextState: flow.StateSelectingAddress,
		}, nil
	}

	ctx.SelectedAddress = ctx.KnownAddresses[index-1]

	if ctx.Occasion == "" {
		return Result{
			Reply:     fmt.Sprintf("%s로 배달해드릴게요. 어떤 기념일을 위한 주문인가요?", ctx.SelectedAddress),
			NextState: flow.StateAskingOccasion,
		}, nil
	}
	return Result{
		Reply:     fmt.Sprintf("%s로 배달해드릴게요.\n%s", ctx.SelectedAddress, dinnerQuestion(ctx)),
		NextState: flow.StateSelectingMenu,
	}, nil
}
