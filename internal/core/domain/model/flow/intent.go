package flow

import "strings"

// Intent is the canonical classification of a single user utterance.
// The conversation engine dispatches on Intent values; the upstream
// classifier may emit legacy names, which ParseIntent normalizes.
type Intent int

const (
	// IntentUnknown represents an unclassifiable utterance.
	// This value (0) helps catch uninitialized Intent values.
	IntentUnknown Intent = iota

	// IntentStart opens a new order conversation, optionally carrying
	// occasion and delivery time entities.
	IntentStart

	// IntentSelectDinner selects a dinner from the catalog by name.
	IntentSelectDinner

	// IntentSelectStyle selects a serving style for the pending dinner.
	IntentSelectStyle

	// IntentSetQuantity sets the quantity of the pending dinner.
	IntentSetQuantity

	// IntentAddMoreDinner asks to add another dinner to the draft.
	IntentAddMoreDinner

	// IntentNoMoreDinner declines adding further dinners.
	IntentNoMoreDinner

	// IntentCustomize changes component quantities of a drafted item.
	IntentCustomize

	// IntentNoCustomize declines customization.
	IntentNoCustomize

	// IntentAddExtraItem adds a standalone menu item (wine, dessert) to the draft.
	IntentAddExtraItem

	// IntentNoExtraItem declines standalone extras.
	IntentNoExtraItem

	// IntentEditItem edits an already drafted item (components, quantity or style).
	IntentEditItem

	// IntentRemoveItem removes a drafted item by name or position.
	IntentRemoveItem

	// IntentSetMemo attaches a delivery memo to the draft.
	IntentSetMemo

	// IntentNoMemo declines leaving a memo.
	IntentNoMemo

	// IntentSelectAddress picks a delivery address from the known list.
	IntentSelectAddress

	// IntentSetOccasion records the occasion for the order.
	IntentSetOccasion

	// IntentSetDeliveryTime records the requested delivery date and time.
	IntentSetDeliveryTime

	// IntentRecommend asks for a dinner recommendation.
	IntentRecommend

	// IntentCheckout asks to finalize the draft into an order.
	IntentCheckout

	// IntentCancel abandons the draft.
	IntentCancel

	// IntentAskInfo asks a free-form question about the menu or service.
	// Also the fallback intent when classification fails.
	IntentAskInfo

	// IntentGreeting is small talk with no order effect.
	IntentGreeting

	// IntentYes is an affirmative answer to the engine's last question.
	IntentYes

	// IntentNo is a negative answer to the engine's last question.
	IntentNo
)

func getIntentStrings() map[Intent]string {
	return map[Intent]string{
		IntentUnknown:         "UNKNOWN",
		IntentStart:           "START",
		IntentSelectDinner:    "SELECT_DINNER",
		IntentSelectStyle:     "SELECT_STYLE",
		IntentSetQuantity:     "SET_QUANTITY",
		IntentAddMoreDinner:   "ADD_MORE_DINNER",
		IntentNoMoreDinner:    "NO_MORE_DINNER",
		IntentCustomize:       "CUSTOMIZE",
		IntentNoCustomize:     "NO_CUSTOMIZE",
		IntentAddExtraItem:    "ADD_EXTRA_ITEM",
		IntentNoExtraItem:     "NO_EXTRA_ITEM",
		IntentEditItem:        "EDIT_ITEM",
		IntentRemoveItem:      "REMOVE_ITEM",
		IntentSetMemo:         "SET_MEMO",
		IntentNoMemo:          "NO_MEMO",
		IntentSelectAddress:   "SELECT_ADDRESS",
		IntentSetOccasion:     "SET_OCCASION",
		IntentSetDeliveryTime: "SET_DELIVERY_TIME",
		IntentRecommend:       "RECOMMEND",
		IntentCheckout:        "CHECKOUT",
		IntentCancel:          "CANCEL",
		IntentAskInfo:         "ASK_INFO",
		IntentGreeting:        "GREETING",
		IntentYes:             "YES",
		IntentNo:              "NO",
	}
}

// getIntentAliases maps legacy classifier intent names onto canonical intents.
// Older prompt revisions still in circulation emit these.
func getIntentAliases() map[string]Intent {
	return map[string]Intent{
		"ORDER_START":         IntentStart,
		"ORDER_MENU":          IntentSelectDinner,
		"SELECT_MENU":         IntentSelectDinner,
		"CUSTOMIZE_MENU":      IntentCustomize,
		"ADD_ADDITIONAL_MENU": IntentAddExtraItem,
		"NO_ADDITIONAL_MENU":  IntentNoExtraItem,
		"ADD_MORE":            IntentAddMoreDinner,
		"NO_MORE":             IntentNoMoreDinner,
		"PROCEED_CHECKOUT":    IntentCheckout,
		"CONFIRM_YES":         IntentYes,
		"CONFIRM_NO":          IntentNo,
		"ADD_TO_CART":         IntentYes,
		"EDIT_ORDER":          IntentEditItem,
		"REMOVE_MENU":         IntentRemoveItem,
		"CANCEL_ORDER":        IntentCancel,
		"ASK_MENU_INFO":       IntentAskInfo,
		"ASK_RECOMMENDATION":  IntentRecommend,
		"SET_ADDRESS":         IntentSelectAddress,
	}
}

// ParseIntent normalizes a classifier intent name to a canonical Intent.
// Matching is case-insensitive and accepts legacy alias names.
// Unrecognized names map to IntentUnknown.
func ParseIntent(name string) Intent {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for intent, s := range getIntentStrings() {
		if s == normalized {
			return intent
		}
	}
	if intent, ok := getIntentAliases()[normalized]; ok {
		return intent
	}
	return IntentUnknown
}

// IntentNames returns the canonical wire names of all known intents in
// declaration order, for embedding into classifier prompts.
func IntentNames() []string {
	strs := getIntentStrings()
	names := make([]string, 0, len(strs))
	for intent := IntentStart; intent <= IntentNo; intent++ {
		names = append(names, strs[intent])
	}
	return names
}

// String returns the canonical wire name of the intent.
func (i Intent) String() string {
	if s, ok := getIntentStrings()[i]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the intent ends the assembly conversation.
func (i Intent) IsTerminal() bool {
	return i == IntentCheckout || i == IntentCancel
}
