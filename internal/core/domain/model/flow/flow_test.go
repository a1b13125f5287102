package flow_test

import (
	"testing"

	"maitred/internal/core/domain/model/flow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	t.Run("canonical_names", func(t *testing.T) {
		assert.Equal(t, flow.IntentStart, flow.ParseIntent("START"))
		assert.Equal(t, flow.IntentSelectDinner, flow.ParseIntent("SELECT_DINNER"))
		assert.Equal(t, flow.IntentCheckout, flow.ParseIntent("CHECKOUT"))
		assert.Equal(t, flow.IntentYes, flow.ParseIntent("YES"))
	})

	t.Run("legacy_aliases_map_to_canonical_intents", func(t *testing.T) {
		cases := map[string]flow.Intent{
			"ORDER_START":         flow.IntentStart,
			"ORDER_MENU":          flow.IntentSelectDinner,
			"CUSTOMIZE_MENU":      flow.IntentCustomize,
			"ADD_ADDITIONAL_MENU": flow.IntentAddExtraItem,
			"NO_ADDITIONAL_MENU":  flow.IntentNoExtraItem,
			"PROCEED_CHECKOUT":    flow.IntentCheckout,
			"CONFIRM_YES":         flow.IntentYes,
			"ADD_TO_CART":         flow.IntentYes,
			"EDIT_ORDER":          flow.IntentEditItem,
			"CANCEL_ORDER":        flow.IntentCancel,
			"ASK_MENU_INFO":       flow.IntentAskInfo,
			"ASK_RECOMMENDATION":  flow.IntentRecommend,
		}
		for name, expected := range cases {
			assert.Equal(t, expected, flow.ParseIntent(name), name)
		}
	})

	t.Run("case_and_whitespace_insensitive", func(t *testing.T) {
		assert.Equal(t, flow.IntentGreeting, flow.ParseIntent("  greeting "))
	})

	t.Run("unrecognized_maps_to_unknown", func(t *testing.T) {
		assert.Equal(t, flow.IntentUnknown, flow.ParseIntent("MAKE_COFFEE"))
		assert.Equal(t, flow.IntentUnknown, flow.ParseIntent(""))
	})
}

func TestIntent_String(t *testing.T) {
	assert.Equal(t, "SELECT_DINNER", flow.IntentSelectDinner.String())
	assert.Equal(t, "UNKNOWN", flow.Intent(999).String())
}

func TestIntent_IsTerminal(t *testing.T) {
	assert.True(t, flow.IntentCheckout.IsTerminal())
	assert.True(t, flow.IntentCancel.IsTerminal())
	assert.False(t, flow.IntentSelectDinner.IsTerminal())
}

func TestParseState(t *testing.T) {
	t.Run("round_trips_all_states", func(t *testing.T) {
		states := []flow.State{
			flow.StateIdle, flow.StateSelectingAddress, flow.StateAskingOccasion,
			flow.StateAskingDeliveryTime, flow.StateSelectingMenu, flow.StateSelectingStyle,
			flow.StateSelectingQuantity, flow.StateAskingMore, flow.StateCustomizing,
			flow.StateSelectingExtras, flow.StateEnteringMemo, flow.StateConfirming,
			flow.StateCheckoutReady,
		}
		for _, state := range states {
			assert.Equal(t, state, flow.ParseState(state.String()))
		}
	})

	t.Run("unrecognized_falls_back_to_idle", func(t *testing.T) {
		assert.Equal(t, flow.StateIdle, flow.ParseState("DANCING"))
	})
}

func TestState_Validate(t *testing.T) {
	require.NoError(t, flow.StateConfirming.Validate())
	require.Error(t, flow.State(99).Validate())
}

func TestUISignal_String(t *testing.T) {
	assert.Equal(t, "NONE", flow.SignalNone.String())
	assert.Equal(t, "SHOW_CONFIRM", flow.SignalShowConfirm.String())
	assert.Equal(t, "SHOW_CANCEL_CONFIRM", flow.SignalShowCancelConfirm.String())
	assert.Equal(t, "REFRESH_DRAFT", flow.SignalRefreshDraft.String())
	assert.Equal(t, "PROCEED_TO_CHECKOUT", flow.SignalProceedToCheckout.String())
}
