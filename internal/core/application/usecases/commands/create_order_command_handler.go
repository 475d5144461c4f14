package commands

import (
	"context"

	"vidstore/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Loads the member and the requested videos, builds the order aggregate
// (which debits the applied reward from the member), and persists both in a
// single transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, memberID, videoIDs, 500)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now awaiting payment confirmation
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence across order, member,
// and video repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The reward debit and the new order are committed together; on any failure
// the transaction rolls back and the member's balance is untouched.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	buyer, err := uow.MemberRepository().Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	videos, err := uow.VideoRepository().GetByIDs(ctx, cmd.VideoIDs())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), buyer, videos, cmd.Reward())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.MemberRepository().Update(ctx, buyer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
