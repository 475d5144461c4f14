package commands

import (
	"context"

	"vidstore/internal/core/domain/model/order"
)

// CancelVideoOrderCommandHandler handles cancellation of a single video
// within an order. The aggregate apportions the refund between the cash and
// reward remainders; canceling the last live video converges to whole-order
// cancellation.
type CancelVideoOrderCommandHandler struct {
	uowFactory RefundUoWFactory
}

// NewCancelVideoOrderCommandHandler creates a handler for per-video cancellations.
// Requires a RefundUoWFactory so the order and the credited member commit
// in the same transaction.
func NewCancelVideoOrderCommandHandler(uowFactory RefundUoWFactory) CancelVideoOrderCommandHandler {
	return CancelVideoOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the per-video cancellation command.
// Rejects orders that are already canceled and videos that are not part of
// the order. The reward part of the returned Refund has been credited to the
// member inside this transaction; the cash part goes back through the
// payment gateway by the caller.
func (h *CancelVideoOrderCommandHandler) Handle(ctx context.Context, cmd CancelVideoOrderCommand) (order.Refund, error) {
	if err := cmd.Validate(); err != nil {
		return order.Refund{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Refund{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Refund{}, err
	}

	if err = aggregate.CheckAlreadyCanceled(); err != nil {
		return order.Refund{}, err
	}

	line, err := aggregate.LineForVideo(cmd.VideoID())
	if err != nil {
		return order.Refund{}, err
	}

	refund, err := aggregate.CancelVideoOrder(line)
	if err != nil {
		return order.Refund{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Refund{}, err
	}

	if err = uow.MemberRepository().Update(ctx, aggregate.Member()); err != nil {
		return order.Refund{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Refund{}, err
	}

	return refund, nil
}
