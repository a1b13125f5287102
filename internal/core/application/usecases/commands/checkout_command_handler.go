package commands

import (
	"context"
	"log/slog"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/core/domain/model/order"
	"maitred/internal/core/domain/services"
)

// CheckoutResult reports the outcome of a checkout. Ordinary rejections
// (an empty draft) come back as a Failure value, not an error; errors are
// reserved for infrastructure problems.
type CheckoutResult struct {
	OrderID     kernel.UUID
	OrderNumber string
	GrandTotal  int

	// Failure is the user-facing reason checkout was refused. Empty on
	// success.
	Failure string
}

// Failed reports whether checkout was refused for a business reason.
func (r CheckoutResult) Failed() bool {
	return r.Failure != ""
}

// CheckoutCommandHandler reconciles the session draft into a placed order.
//
// Dinner lines expand into unit rows: a line of quantity N becomes N rows
// of quantity 1, each re-applying the line's style, exclusions and
// component overrides at the line's unit price. Attached add-ons become
// their own rows, one per attachment, so nothing a draft carries goes
// unbilled. Standalone extras stay as one row at unit price times quantity.
// All prices are carried verbatim from the draft; checkout never reprices
// against the catalog.
//
// The order insert and the session cart cleanup commit in one transaction.
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the checkout command.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}
	params := cmd.Params()

	completed := draft.StripPending(params.Items)
	if len(completed) == 0 {
		return CheckoutResult{Failure: "완성된 주문이 없습니다."}, nil
	}

	lines, err := expandLines(completed)
	if err != nil {
		return CheckoutResult{}, err
	}

	deliveryAt := params.DeliveryAt
	if deliveryAt == nil {
		moment := services.DefaultDeliveryMoment(params.Now)
		deliveryAt = &moment
	}

	aggregate, err := order.NewOrder(order.NewOrderParams{
		ID:         kernel.NewUUID(),
		Address:    params.Address,
		DeliveryAt: *deliveryAt,
		Occasion:   params.Occasion,
		Memo:       params.Memo,
		Lines:      lines,
		PlacedAt:   params.Now,
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CheckoutResult{}, err
	}
	if err := uow.CartRepository().Delete(ctx, params.SessionID); err != nil {
		return CheckoutResult{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	h.logger.InfoContext(ctx, "order placed",
		slog.String("order_number", aggregate.Number()),
		slog.Int("grand_total", aggregate.GrandTotal()),
		slog.Int("lines", len(lines)))

	return CheckoutResult{
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.Number(),
		GrandTotal:  aggregate.GrandTotal(),
	}, nil
}

// expandLines turns completed draft items into persisted order rows.
func expandLines(items []*draft.Item) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(items))

	for _, item := range items {
		if item.IsStandalone() {
			line, err := order.NewLine(order.NewLineParams{
				MenuItemID: item.MenuItemID(),
				Name:       item.DinnerName(),
				Quantity:   item.Quantity(),
				UnitPrice:  item.UnitPrice(),
			})
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
			continue
		}

		for unit := 0; unit < item.Quantity(); unit++ {
			line, err := order.NewLine(order.NewLineParams{
				DinnerID:   item.DinnerID(),
				StyleID:    item.StyleID(),
				Name:       item.DinnerName(),
				StyleName:  item.StyleName(),
				Quantity:   1,
				UnitPrice:  item.UnitPrice(),
				Excluded:   item.ExcludedComponents(),
				Components: item.ComponentOverrides(),
			})
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}

		// attachments are billed per line, one row each
		for _, addOn := range item.AddOns() {
			menuItemID := addOn.MenuItemID()
			line, err := order.NewLine(order.NewLineParams{
				MenuItemID: &menuItemID,
				Name:       addOn.Name(),
				Quantity:   addOn.Quantity(),
				UnitPrice:  addOn.UnitPrice(),
			})
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	}

	return lines, nil
}
