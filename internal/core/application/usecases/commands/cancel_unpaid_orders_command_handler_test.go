package commands_test

import (
	"errors"
	"testing"
	"time"

	"vidstore/internal/core/application/usecases/commands"
	"vidstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelUnpaidOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelUnpaidOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	buyer := newTestMember(t, 1000)
	staleOrder1 := newTestOrder(t, buyer, newTestVideos(t, 500), 500)
	staleOrder2 := newTestOrder(t, buyer, newTestVideos(t, 700), 0)
	staleOrders := []*order.Order{staleOrder1, staleOrder2}

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnpaidBefore", ctx, mock.AnythingOfType("time.Time")).Return(staleOrders, nil).Once(),
		orderRepo.On("Update", ctx, staleOrder1).Return(nil).Once(),
		orderRepo.On("Update", ctx, staleOrder2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelUnpaidOrdersCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, staleOrder1.Status())
	assert.Equal(t, order.Canceled, staleOrder2.Status())
	// Unpaid orders never refund: no payment came in and the reward hold stays.
	assert.Equal(t, 500, buyer.Reward())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelUnpaidOrdersCommandHandler_Handle_NoStaleOrders(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelUnpaidOrdersCommand(30 * time.Minute)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnpaidBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelUnpaidOrdersCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestCancelUnpaidOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelUnpaidOrdersCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCancelUnpaidOrdersCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelUnpaidOrdersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelUnpaidOrdersCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelUnpaidOrdersCommand(30 * time.Minute)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnpaidBefore", ctx, mock.AnythingOfType("time.Time")).
			Return(nil, errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelUnpaidOrdersCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestCancelUnpaidOrdersCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCancelUnpaidOrdersCommand(30 * time.Minute)

	buyer := newTestMember(t, 0)
	staleOrder := newTestOrder(t, buyer, newTestVideos(t, 500), 0)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllUnpaidBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{staleOrder}, nil).
			Once(),
		orderRepo.On("Update", ctx, staleOrder).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelUnpaidOrdersCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
}
