package commands

import (
	"context"
)

// ConvertRewardCommandHandler handles refund-to-reward conversion.
// The aggregate drains its reward remainder first, then its cash remainder,
// and credits the member the full amount; the whole conversion is atomic.
type ConvertRewardCommandHandler struct {
	uowFactory RefundUoWFactory
}

// NewConvertRewardCommandHandler creates a handler for refund-to-reward conversions.
// Requires a RefundUoWFactory so the order and the credited member commit
// in the same transaction.
func NewConvertRewardCommandHandler(uowFactory RefundUoWFactory) ConvertRewardCommandHandler {
	return ConvertRewardCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the conversion command.
// Fails with member.RewardNotEnoughError when the order's remainders cannot
// cover the amount; in that case nothing is mutated or persisted.
func (h *ConvertRewardCommandHandler) Handle(ctx context.Context, cmd ConvertRewardCommand) error {
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

	if err = aggregate.ConvertAmountToReward(cmd.Amount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.MemberRepository().Update(ctx, aggregate.Member()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
