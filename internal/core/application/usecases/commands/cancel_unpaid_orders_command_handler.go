package commands

import (
	"context"
	"time"
)

// CancelUnpaidOrdersCommandHandler cancels stale orders that never completed
// payment. An order canceled before completion has zero refundable remainders,
// so only the order aggregate changes; the member keeps whatever reward state
// the order's creation left it with.
//
// Example:
//
//	handler := NewCancelUnpaidOrdersCommandHandler(uowFactory)
//	cmd, _ := NewCancelUnpaidOrdersCommand(30 * time.Minute)
//
//	// This would typically be called periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("unpaid order sweep failed: %w", err)
//	}
type CancelUnpaidOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelUnpaidOrdersCommandHandler creates a handler for the unpaid order sweep.
// Requires an OrderUoWFactory since the sweep only touches order aggregates.
func NewCancelUnpaidOrdersCommandHandler(uowFactory OrderUoWFactory) CancelUnpaidOrdersCommandHandler {
	return CancelUnpaidOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
// Retrieves all orders still awaiting payment that were created before
// now minus the command's TTL, cancels each, and commits the batch in a
// single transaction.
func (h *CancelUnpaidOrdersCommandHandler) Handle(ctx context.Context, cmd CancelUnpaidOrdersCommand) error {
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

	cutoff := time.Now().Add(-cmd.TTL())

	orders, err := ordersRepo.GetAllUnpaidBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		aggregate.CancelAll()

		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
