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

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	buyer := newTestMember(t, 1000)
	videos := newTestVideos(t, 500, 1500)
	videoIDs := []kernel.UUID{videos[0].ID(), videos[1].ID()}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), buyer.ID(), videoIDs, 300)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	memberRepo := new(MockMemberRepository)
	videoRepo := new(MockVideoRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once(),
		uow.On("VideoRepository").Return(videoRepo).Once(),
		videoRepo.On("GetByIDs", ctx, videoIDs).Return(videos, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Update", ctx, buyer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 700, buyer.Reward()) // 1000 - 300 applied
	orderRepo.AssertExpectations(t)
	memberRepo.AssertExpectations(t)
	videoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()}, 0)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_GetMemberError(t *testing.T) {
	ctx := t.Context()
	memberID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(
		kernel.NewUUID(), memberID, []kernel.UUID{kernel.NewUUID()}, 0)

	memberRepo := new(MockMemberRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Get", ctx, memberID).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestCreateOrderCommandHandler_Handle_GetVideosError(t *testing.T) {
	ctx := t.Context()
	buyer := newTestMember(t, 0)
	videoIDs := []kernel.UUID{kernel.NewUUID()}
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), buyer.ID(), videoIDs, 0)

	memberRepo := new(MockMemberRepository)
	videoRepo := new(MockVideoRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once(),
		uow.On("VideoRepository").Return(videoRepo).Once(),
		videoRepo.On("GetByIDs", ctx, videoIDs).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestCreateOrderCommandHandler_Handle_RewardNotEnough(t *testing.T) {
	ctx := t.Context()

	buyer := newTestMember(t, 100)
	videos := newTestVideos(t, 500)
	videoIDs := []kernel.UUID{videos[0].ID()}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), buyer.ID(), videoIDs, 300)
	require.NoError(t, err)

	memberRepo := new(MockMemberRepository)
	videoRepo := new(MockVideoRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once(),
		uow.On("VideoRepository").Return(videoRepo).Once(),
		videoRepo.On("GetByIDs", ctx, videoIDs).Return(videos, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, member.ErrRewardNotEnough)
	assert.Equal(t, 100, buyer.Reward()) // balance untouched after rollback
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	buyer := newTestMember(t, 0)
	videos := newTestVideos(t, 500)
	videoIDs := []kernel.UUID{videos[0].ID()}
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), buyer.ID(), videoIDs, 0)

	orderRepo := new(MockOrderRepository)
	memberRepo := new(MockMemberRepository)
	videoRepo := new(MockVideoRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once(),
		uow.On("VideoRepository").Return(videoRepo).Once(),
		videoRepo.On("GetByIDs", ctx, videoIDs).Return(videos, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "add error")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	buyer := newTestMember(t, 0)
	videos := newTestVideos(t, 500)
	videoIDs := []kernel.UUID{videos[0].ID()}
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), buyer.ID(), videoIDs, 0)

	orderRepo := new(MockOrderRepository)
	memberRepo := new(MockMemberRepository)
	videoRepo := new(MockVideoRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil).Once(),
		uow.On("VideoRepository").Return(videoRepo).Once(),
		videoRepo.On("GetByIDs", ctx, videoIDs).Return(videos, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("Update", ctx, buyer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
