package commands

import (
	"context"
	"log/slog"
)

// AcceptOrdersCommandHandler moves all placed orders into the accepted
// status. All updates occur within a single transaction; a batch with no
// placed orders is a no-op, not an error.
type AcceptOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewAcceptOrdersCommandHandler creates a handler for order acceptance.
func NewAcceptOrdersCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) AcceptOrdersCommandHandler {
	return AcceptOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the order acceptance command.
func (h *AcceptOrdersCommandHandler) Handle(ctx context.Context, cmd AcceptOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllInPlacedStatus(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	for _, o := range orders {
		if err = o.Accept(); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, o); err != nil {
			return err
		}

		h.logger.InfoContext(ctx, "Order accepted",
			"order_number", o.Number(),
			"grand_total", o.GrandTotal(),
		)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
