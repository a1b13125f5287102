package flow

import (
	"fmt"
	"strings"

	"maitred/internal/pkg/errs"
)

// State represents where the assembly conversation currently stands.
// It is advisory context for dispatch, not a hard gate: the engine routes
// primarily on Intent and uses State to disambiguate short answers.
//
// Typical happy path:
//
//	Idle ──> SelectingAddress ──> AskingOccasion ──> AskingDeliveryTime
//	     ──> SelectingMenu ──> SelectingStyle ──> SelectingQuantity
//	     ──> AskingMore ──> Customizing ──> SelectingExtras
//	     ──> EnteringMemo ──> Confirming ──> CheckoutReady
type State int

const (
	// StateIdle is the resting state outside any order conversation.
	StateIdle State = iota

	// StateSelectingAddress waits for a delivery address choice.
	StateSelectingAddress

	// StateAskingOccasion waits for the occasion of the order.
	StateAskingOccasion

	// StateAskingDeliveryTime waits for the requested delivery date and time.
	StateAskingDeliveryTime

	// StateSelectingMenu waits for a dinner selection.
	StateSelectingMenu

	// StateSelectingStyle waits for a serving style for the pending dinner.
	StateSelectingStyle

	// StateSelectingQuantity waits for a quantity for the pending dinner.
	StateSelectingQuantity

	// StateAskingMore waits for a yes/no on adding another dinner.
	StateAskingMore

	// StateCustomizing waits for component changes to drafted items.
	StateCustomizing

	// StateSelectingExtras waits for standalone extra items.
	StateSelectingExtras

	// StateEnteringMemo waits for a delivery memo.
	StateEnteringMemo

	// StateConfirming waits for final confirmation of the draft.
	StateConfirming

	// StateCheckoutReady means the draft passed the checkout gate and the
	// client may call the checkout endpoint.
	StateCheckoutReady
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateIdle:               "IDLE",
		StateSelectingAddress:   "SELECTING_ADDRESS",
		StateAskingOccasion:     "ASKING_OCCASION",
		StateAskingDeliveryTime: "ASKING_DELIVERY_TIME",
		StateSelectingMenu:      "SELECTING_MENU",
		StateSelectingStyle:     "SELECTING_STYLE",
		StateSelectingQuantity:  "SELECTING_QUANTITY",
		StateAskingMore:         "ASKING_MORE",
		StateCustomizing:        "CUSTOMIZING",
		StateSelectingExtras:    "SELECTING_EXTRAS",
		StateEnteringMemo:       "ENTERING_MEMO",
		StateConfirming:         "CONFIRMING",
		StateCheckoutReady:      "CHECKOUT_READY",
	}
}

// ParseState converts a wire name back to a State.
// Unrecognized names map to StateIdle.
func ParseState(name string) State {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for state, s := range getStateStrings() {
		if s == normalized {
			return state
		}
	}
	return StateIdle
}

// Validate checks if the State value is one of the defined states.
func (s State) Validate() error {
	if _, ok := getStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the wire name of the state.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "IDLE"
}
