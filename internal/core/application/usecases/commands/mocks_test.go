package commands_test

import (
	"context"
	"testing"
	"time"

	"vidstore/internal/core/application/usecases/commands"
	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/member"
	"vidstore/internal/core/domain/model/order"
	"vidstore/internal/core/domain/model/video"
	"vidstore/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnpaidBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockMemberRepository struct{ mock.Mock }

func (m *MockMemberRepository) Add(ctx context.Context, mem *member.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockMemberRepository) Update(ctx context.Context, mem *member.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}

func (m *MockMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

type MockVideoRepository struct{ mock.Mock }

func (m *MockVideoRepository) Add(ctx context.Context, v *video.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVideoRepository) Get(ctx context.Context, id kernel.UUID) (*video.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*video.Video, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*video.Video), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MemberRepository() ports.MemberRepository {
	args := m.Called()
	return args.Get(0).(ports.MemberRepository)
}

func (m *MockUoW) VideoRepository() ports.VideoRepository {
	args := m.Called()
	return args.Get(0).(ports.VideoRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRefundUoWFactory struct{ mock.Mock }

func (m *MockRefundUoWFactory) Create() commands.RefundUoW {
	args := m.Called()
	return args.Get(0).(commands.RefundUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// Fixtures shared by the handler tests.

func newTestMember(t *testing.T, reward int) *member.Member {
	t.Helper()
	m, err := member.NewMember(kernel.NewUUID(), "test member", reward)
	require.NoError(t, err)
	return m
}

func newTestVideos(t *testing.T, prices ...int) []*video.Video {
	t.Helper()
	videos := make([]*video.Video, 0, len(prices))
	for _, price := range prices {
		v, err := video.NewVideo(kernel.NewUUID(), "test video", price)
		require.NoError(t, err)
		videos = append(videos, v)
	}
	return videos
}

func newTestOrder(t *testing.T, buyer *member.Member, videos []*video.Video, rewardToUse int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), buyer, videos, rewardToUse)
	require.NoError(t, err)
	return o
}

func newCompletedTestOrder(t *testing.T, buyer *member.Member, videos []*video.Video, rewardToUse int) *order.Order {
	t.Helper()
	o := newTestOrder(t, buyer, videos, rewardToUse)
	require.NoError(t, o.Complete(time.Now(), "pay-ref-123"))
	return o
}
