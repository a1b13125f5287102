package draft_test

import (
	"testing"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDinner(t *testing.T, name string, basePrice int, components ...catalog.Component) *catalog.Dinner {
	t.Helper()
	dinner, err := catalog.NewDinner(kernel.NewUUID(), name, name, basePrice, components, nil, true)
	require.NoError(t, err)
	return dinner
}

func makeStyle(t *testing.T, name string, extraPrice int) *catalog.Style {
	t.Helper()
	style, err := catalog.NewStyle(kernel.NewUUID(), name, name, extraPrice, true)
	require.NoError(t, err)
	return style
}

func makeComponent(t *testing.T, name string, defaultQuantity, unitPrice int) catalog.Component {
	t.Helper()
	component, err := catalog.NewComponent(name, defaultQuantity, unitPrice)
	require.NoError(t, err)
	return component
}

func TestNewPendingItem(t *testing.T) {
	t.Run("starts_pending_at_base_price", func(t *testing.T) {
		// Given
		dinner := makeDinner(t, "Valentine Dinner", 50000)

		// When
		item, err := draft.NewPendingItem(dinner, 1)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 0, item.Quantity())
		assert.Equal(t, 50000, item.BasePrice())
		assert.Equal(t, 50000, item.UnitPrice())
		assert.Equal(t, 0, item.TotalPrice())
		assert.Nil(t, item.StyleID())
		assert.True(t, item.IsPending())
	})

	t.Run("rejects_zero_value_dinner", func(t *testing.T) {
		var dinner catalog.Dinner
		_, err := draft.NewPendingItem(&dinner, 1)
		require.ErrorIs(t, err, catalog.ErrDinnerIsNotConstructed)
	})
}

func TestItem_StyleAndQuantity(t *testing.T) {
	t.Run("style_then_quantity_recomputes_total", func(t *testing.T) {
		// Given
		dinner := makeDinner(t, "Valentine Dinner", 50000)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		// When: apply a style with a 5000 extra
		require.NoError(t, item.ApplyStyle(makeStyle(t, "Deluxe", 5000)))

		// Then: unit price moves, quantity still pending
		assert.Equal(t, 55000, item.UnitPrice())
		assert.Equal(t, 0, item.Quantity())
		assert.Equal(t, 0, item.TotalPrice())
		assert.True(t, item.IsPending())

		// When: confirm quantity 2
		require.NoError(t, item.SetQuantity(2))

		// Then
		assert.Equal(t, 110000, item.TotalPrice())
		assert.False(t, item.IsPending())
	})

	t.Run("changing_style_never_stacks_extras", func(t *testing.T) {
		dinner := makeDinner(t, "French Dinner", 40000)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		require.NoError(t, item.ApplyStyle(makeStyle(t, "Grand", 10000)))
		require.NoError(t, item.ChangeStyle(makeStyle(t, "Deluxe", 5000)))

		assert.Equal(t, 45000, item.UnitPrice(), "previous style extra must be discarded")
	})

	t.Run("changing_style_preserves_customization_delta", func(t *testing.T) {
		wine := makeComponent(t, "wine", 1, 3000)
		dinner := makeDinner(t, "French Dinner", 40000, wine)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		require.NoError(t, item.ApplyStyle(makeStyle(t, "Grand", 10000)))
		require.NoError(t, item.ExcludeComponent(wine))
		require.NoError(t, item.ChangeStyle(makeStyle(t, "Simple", 0)))

		assert.Equal(t, 40000-3000, item.UnitPrice())
	})

	t.Run("style_on_standalone_line_fails", func(t *testing.T) {
		menuItem, err := catalog.NewMenuItem(kernel.NewUUID(), "Wine", "와인", "wine", 30000, true)
		require.NoError(t, err)
		item, err := draft.NewStandaloneItem(menuItem, 1, 1)
		require.NoError(t, err)

		require.ErrorIs(t, item.ApplyStyle(makeStyle(t, "Deluxe", 5000)), draft.ErrItemHasNoDinner)
	})

	t.Run("negative_quantity_rejected", func(t *testing.T) {
		dinner := makeDinner(t, "Valentine Dinner", 50000)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		require.Error(t, item.SetQuantity(-1))
	})
}

func TestItem_Customization(t *testing.T) {
	wine := func(t *testing.T) catalog.Component { return makeComponent(t, "wine", 1, 3000) }

	t.Run("exclude_subtracts_default_quantity_times_unit_price", func(t *testing.T) {
		// Given
		component := wine(t)
		dinner := makeDinner(t, "Valentine Dinner", 50000, component)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)
		require.NoError(t, item.ApplyStyle(makeStyle(t, "Deluxe", 5000)))
		require.Equal(t, 55000, item.UnitPrice())

		// When
		require.NoError(t, item.ExcludeComponent(component))

		// Then
		assert.Equal(t, 52000, item.UnitPrice())
		assert.True(t, item.IsExcluded("wine"))

		require.NoError(t, item.SetQuantity(2))
		assert.Equal(t, 104000, item.TotalPrice())
	})

	t.Run("reinclude_restores_pre_exclusion_price", func(t *testing.T) {
		component := wine(t)
		dinner := makeDinner(t, "Valentine Dinner", 50000, component)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		before := item.UnitPrice()
		require.NoError(t, item.ExcludeComponent(component))
		require.NoError(t, item.IncludeComponent(component))

		assert.Equal(t, before, item.UnitPrice())
		assert.False(t, item.IsExcluded("wine"))
	})

	t.Run("double_exclude_is_noop", func(t *testing.T) {
		component := wine(t)
		dinner := makeDinner(t, "Valentine Dinner", 50000, component)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		require.NoError(t, item.ExcludeComponent(component))
		require.NoError(t, item.ExcludeComponent(component))

		assert.Equal(t, 47000, item.UnitPrice())
	})

	t.Run("component_quantity_change_prices_the_delta", func(t *testing.T) {
		component := wine(t)
		dinner := makeDinner(t, "Valentine Dinner", 50000, component)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		// default 1 -> 3 adds 2 x 3000
		require.NoError(t, item.SetComponentQuantity(component, 3))
		assert.Equal(t, 56000, item.UnitPrice())

		// 3 -> 2 subtracts one unit, measured from the prior override
		require.NoError(t, item.SetComponentQuantity(component, 2))
		assert.Equal(t, 53000, item.UnitPrice())
	})

	t.Run("total_price_invariant_holds_after_every_mutation", func(t *testing.T) {
		component := wine(t)
		dinner := makeDinner(t, "Valentine Dinner", 50000, component)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		mutations := []func() error{
			func() error { return item.ApplyStyle(makeStyle(t, "Deluxe", 5000)) },
			func() error { return item.SetQuantity(3) },
			func() error { return item.SetComponentQuantity(component, 2) },
			func() error { return item.ExcludeComponent(component) },
			func() error { return item.IncludeComponent(component) },
			func() error { return item.ChangeStyle(makeStyle(t, "Grand", 10000)) },
		}
		for _, mutate := range mutations {
			require.NoError(t, mutate())
			assert.Equal(t, item.UnitPrice()*item.Quantity(), item.TotalPrice())
		}
	})
}

func TestItem_AddOns(t *testing.T) {
	t.Run("same_catalog_id_merges_quantity", func(t *testing.T) {
		dinner := makeDinner(t, "Valentine Dinner", 50000)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)

		menuItem, err := catalog.NewMenuItem(kernel.NewUUID(), "Wine", "와인", "wine", 30000, true)
		require.NoError(t, err)

		first, err := draft.NewAddOn(menuItem, 1)
		require.NoError(t, err)
		second, err := draft.NewAddOn(menuItem, 2)
		require.NoError(t, err)

		require.NoError(t, item.AddOrMergeAddOn(first))
		require.NoError(t, item.AddOrMergeAddOn(second))

		require.Len(t, item.AddOns(), 1)
		assert.Equal(t, 3, item.AddOns()[0].Quantity())
	})

	t.Run("attachment_enters_the_line_total", func(t *testing.T) {
		// Given: a completed dinner line at 55000 per unit
		dinner := makeDinner(t, "Valentine Dinner", 50000)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)
		require.NoError(t, item.ApplyStyle(makeStyle(t, "Deluxe", 5000)))
		require.NoError(t, item.SetQuantity(1))

		menuItem, err := catalog.NewMenuItem(kernel.NewUUID(), "Wine", "와인", "wine", 30000, true)
		require.NoError(t, err)
		addOn, err := draft.NewAddOn(menuItem, 2)
		require.NoError(t, err)

		// When
		require.NoError(t, item.AddOrMergeAddOn(addOn))

		// Then: the attachment is billed once per line, not per unit
		assert.Equal(t, 55000, item.UnitPrice())
		assert.Equal(t, 115000, item.TotalPrice())

		require.NoError(t, item.SetQuantity(2))
		assert.Equal(t, 170000, item.TotalPrice())
	})

	t.Run("merge_recomputes_the_total", func(t *testing.T) {
		dinner := makeDinner(t, "Valentine Dinner", 50000)
		item, err := draft.NewPendingItem(dinner, 1)
		require.NoError(t, err)
		require.NoError(t, item.ApplyStyle(makeStyle(t, "Simple", 0)))
		require.NoError(t, item.SetQuantity(1))

		menuItem, err := catalog.NewMenuItem(kernel.NewUUID(), "Cake", "케이크", "dessert", 15000, true)
		require.NoError(t, err)

		first, err := draft.NewAddOn(menuItem, 1)
		require.NoError(t, err)
		require.NoError(t, item.AddOrMergeAddOn(first))
		assert.Equal(t, 65000, item.TotalPrice())

		second, err := draft.NewAddOn(menuItem, 1)
		require.NoError(t, err)
		require.NoError(t, item.AddOrMergeAddOn(second))
		assert.Equal(t, 80000, item.TotalPrice())
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("carries_prices_verbatim", func(t *testing.T) {
		dinnerID := kernel.NewUUID()
		styleID := kernel.NewUUID()

		item, err := draft.RestoreItem(draft.RestoreItemParams{
			DinnerID:   &dinnerID,
			DinnerName: "Valentine Dinner",
			StyleID:    &styleID,
			StyleName:  "Deluxe",
			StyleExtra: 5000,
			Quantity:   2,
			BasePrice:  50000,
			UnitPrice:  52000,
			ItemIndex:  1,
			Excluded:   []string{"wine"},
		})

		require.NoError(t, err)
		assert.Equal(t, 52000, item.UnitPrice())
		assert.Equal(t, 104000, item.TotalPrice())
		assert.Equal(t, -3000, item.CustomizationDelta())
	})

	t.Run("requires_a_catalog_reference", func(t *testing.T) {
		_, err := draft.RestoreItem(draft.RestoreItemParams{Quantity: 1})
		require.Error(t, err)
	})
}
