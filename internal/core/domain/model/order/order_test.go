package order_test

import (
	"testing"
	"time"

	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLine(t *testing.T) order.Line {
	t.Helper()
	dinnerID := kernel.NewUUID()
	styleID := kernel.NewUUID()
	line, err := order.NewLine(order.NewLineParams{
		DinnerID:  &dinnerID,
		StyleID:   &styleID,
		Name:      "Valentine Dinner",
		StyleName: "Deluxe",
		Quantity:  1,
		UnitPrice: 55000,
	})
	require.NoError(t, err)
	return line
}

func validParams(t *testing.T) order.NewOrderParams {
	t.Helper()
	return order.NewOrderParams{
		ID:         kernel.NewUUID(),
		Address:    "서울시 강남구 테헤란로 1",
		DeliveryAt: time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC),
		Occasion:   "기념일",
		Memo:       "문 앞에 놓아주세요",
		Lines:      []order.Line{validLine(t)},
		PlacedAt:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		params := validParams(t)

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(params.ID))
		assert.Equal(t, params.Address, o.Address())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, 55000, o.GrandTotal())
	})

	t.Run("should derive the order number from the id", func(t *testing.T) {
		params := validParams(t)

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		assert.Equal(t, order.NumberFromID(params.ID), o.Number())
		assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, o.Number())
	})

	t.Run("should derive grand total from the lines", func(t *testing.T) {
		params := validParams(t)
		params.Lines = append(params.Lines, validLine(t), validLine(t))

		o, err := order.NewOrder(params)

		require.NoError(t, err)
		assert.Equal(t, 165000, o.GrandTotal())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		params := validParams(t)
		params.ID = kernel.UUID{}

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		params := validParams(t)
		params.Address = "  "

		o, err := order.NewOrder(params)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should fail without lines", func(t *testing.T) {
		params := validParams(t)
		params.Lines = nil

		o, err := order.NewOrder(params)

		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
		assert.Nil(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the stored number and status", func(t *testing.T) {
		params := validParams(t)

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:         params.ID,
			Number:     "ORD-0000ABCD",
			Address:    params.Address,
			DeliveryAt: params.DeliveryAt,
			Lines:      params.Lines,
			Status:     order.Accepted,
			PlacedAt:   params.PlacedAt,
		})

		require.NoError(t, err)
		assert.Equal(t, "ORD-0000ABCD", o.Number())
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		params := validParams(t)

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:         params.ID,
			Address:    params.Address,
			DeliveryAt: params.DeliveryAt,
			Lines:      params.Lines,
			Status:     order.Unknown,
		})

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderLifecycle(t *testing.T) {
	t.Run("should accept then deliver a placed order", func(t *testing.T) {
		o, err := order.NewOrder(validParams(t))
		require.NoError(t, err)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should cancel a placed order", func(t *testing.T) {
		o, err := order.NewOrder(validParams(t))
		require.NoError(t, err)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should not cancel an accepted order", func(t *testing.T) {
		o, err := order.NewOrder(validParams(t))
		require.NoError(t, err)
		require.NoError(t, o.Accept())

		err = o.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should not deliver an unaccepted order", func(t *testing.T) {
		o, err := order.NewOrder(validParams(t))
		require.NoError(t, err)

		err = o.Deliver()

		require.Error(t, err)
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should reject order not created via constructor", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewLine(t *testing.T) {
	dinnerID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	t.Run("should derive total from unit price and quantity", func(t *testing.T) {
		line, err := order.NewLine(order.NewLineParams{
			MenuItemID: &menuItemID,
			Name:       "Wine",
			Quantity:   3,
			UnitPrice:  30000,
		})

		require.NoError(t, err)
		assert.Equal(t, 90000, line.TotalPrice())
	})

	t.Run("should fail without a catalog reference", func(t *testing.T) {
		_, err := order.NewLine(order.NewLineParams{
			Name:      "Wine",
			Quantity:  1,
			UnitPrice: 30000,
		})

		require.Error(t, err)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLine(order.NewLineParams{
			DinnerID:  &dinnerID,
			Name:      "Valentine Dinner",
			Quantity:  0,
			UnitPrice: 50000,
		})

		require.Error(t, err)
	})

	t.Run("should reject line not created via constructor", func(t *testing.T) {
		var line order.Line

		assert.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}
