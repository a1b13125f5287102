package flow

// UISignal tells the client which auxiliary surface to render alongside
// the assistant reply.
type UISignal int

const (
	// SignalNone renders the reply only.
	SignalNone UISignal = iota

	// SignalShowConfirm shows the order confirmation sheet.
	SignalShowConfirm

	// SignalShowCancelConfirm shows the cancellation confirmation sheet.
	SignalShowCancelConfirm

	// SignalRefreshDraft tells the client to re-fetch and re-render the draft.
	SignalRefreshDraft

	// SignalProceedToCheckout tells the client to navigate to checkout.
	SignalProceedToCheckout
)

func getUISignalStrings() map[UISignal]string {
	return map[UISignal]string{
		SignalNone:              "NONE",
		SignalShowConfirm:       "SHOW_CONFIRM",
		SignalShowCancelConfirm: "SHOW_CANCEL_CONFIRM",
		SignalRefreshDraft:      "REFRESH_DRAFT",
		SignalProceedToCheckout: "PROCEED_TO_CHECKOUT",
	}
}

// String returns the wire name of the signal.
func (u UISignal) String() string {
	if s, ok := getUISignalStrings()[u]; ok {
		return s
	}
	return "NONE"
}
