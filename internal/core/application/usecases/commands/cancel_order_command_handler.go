package commands

import (
	"context"

	"vidstore/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles whole-order cancellation.
// Cancels every line, credits refundable reward back to the member (for
// completed orders), and returns the refund so the caller can reverse the
// cash portion through the payment gateway.
type CancelOrderCommandHandler struct {
	uowFactory RefundUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
// Requires a RefundUoWFactory so the order and the credited member commit
// in the same transaction.
func NewCancelOrderCommandHandler(uowFactory RefundUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Rejects orders that are already canceled (order.ErrAlreadyCanceled).
// The returned Refund carries the exact pre-cancellation remainders: the
// reward part has been credited to the member inside this transaction, the
// cash part is the caller's to pay back out-of-band.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (order.Refund, error) {
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

	refund := aggregate.CancelAll()

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
