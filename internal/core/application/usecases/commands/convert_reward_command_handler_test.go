package commands_test

import (
	"errors"
	"testing"

	"vidstore/internal/core/application/usecases/commands"
	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConvertRewardCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	// 700 total price, 500 paid with reward, 200 with cash.
	buyer := newTestMember(t, 500)
	testOrder := newCompletedTestOrder(t, buyer, newTestVideos(t, 700), 500)
	cmd, err := commands.NewConvertRewardCommand(testOrder.ID(), 600)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	memberRepo := new(MockMemberRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Update", ctx, buyer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConvertRewardCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// 600 drains the 500 reward remainder plus 100 of the cash remainder.
	assert.Equal(t, 100, testOrder.RemainRefundAmount())
	assert.Equal(t, 0, testOrder.RemainRefundReward())
	assert.Equal(t, 600, buyer.Reward())
	orderRepo.AssertExpectations(t)
	memberRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConvertRewardCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ConvertRewardCommand{} // not constructed properly

	factory := new(MockRefundUoWFactory)
	handler := commands.NewConvertRewardCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrConvertRewardCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestConvertRewardCommandHandler_Handle_GetOrderError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewConvertRewardCommand(orderID, 600)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConvertRewardCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestConvertRewardCommandHandler_Handle_RemaindersTooSmall(t *testing.T) {
	ctx := t.Context()

	buyer := newTestMember(t, 500)
	testOrder := newCompletedTestOrder(t, buyer, newTestVideos(t, 700), 500)
	cmd, _ := commands.NewConvertRewardCommand(testOrder.ID(), 800)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConvertRewardCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, member.ErrRewardNotEnough)
	// Nothing changed: the conversion is all or nothing.
	assert.Equal(t, 200, testOrder.RemainRefundAmount())
	assert.Equal(t, 500, testOrder.RemainRefundReward())
	assert.Equal(t, 0, buyer.Reward())
}

func TestConvertRewardCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	buyer := newTestMember(t, 500)
	testOrder := newCompletedTestOrder(t, buyer, newTestVideos(t, 700), 500)
	cmd, _ := commands.NewConvertRewardCommand(testOrder.ID(), 100)

	orderRepo := new(MockOrderRepository)
	memberRepo := new(MockMemberRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Update", ctx, buyer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRefundUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConvertRewardCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
