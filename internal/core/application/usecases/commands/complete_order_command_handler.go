package commands

import (
	"context"
	"time"
)

// CompleteOrderCommandHandler handles payment confirmation for an order.
// Validates the order against the charged amount, then marks the order and
// all its lines completed, making the full purchase refundable.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for payment confirmations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation.
// CheckValid rejects orders that are not awaiting payment (ErrOrderNotValid)
// or whose total differs from the charged amount (PriceMismatchError) before
// anything is mutated. No member-reward change happens here: the reward was
// debited when the order was created.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.CheckValid(cmd.Amount()); err != nil {
		return err
	}

	if err = aggregate.Complete(time.Now(), cmd.PaymentReference()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
