package memberrepo_test

import (
	"context"
	"testing"
	"time"

	"vidstore/internal/adapters/out/postgres/memberrepo"
	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/member"
	"vidstore/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// MemberRepositoryIntegrationTestSuite provides integration tests for MemberRepository
// using PostgreSQL containers to verify database persistence behavior.
type MemberRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *memberrepo.GormMemberRepository
	tracker    *MockAggregateTracker
}

func (suite *MemberRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&memberrepo.MemberDTO{}))
}

func (suite *MemberRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE members CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = memberrepo.NewGormMemberRepository(suite.db, suite.tracker)
}

func (suite *MemberRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MemberRepositoryIntegrationTestSuite) TestAdd_ValidMember_Success() {
	ctx := context.Background()

	testMember, err := member.NewMember(kernel.NewUUID(), "Alice", 1000)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testMember.ID(), testMember).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testMember))

	var count int64
	suite.Require().NoError(suite.db.Model(&memberrepo.MemberDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MemberRepositoryIntegrationTestSuite) TestGet_ExistingMember_ReturnsMember() {
	ctx := context.Background()

	testMember, err := member.NewMember(kernel.NewUUID(), "Alice", 1000)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testMember))

	loaded, err := suite.repository.Get(ctx, testMember.ID())
	suite.Require().NoError(err)

	suite.Equal(testMember.ID(), loaded.ID())
	suite.Equal("Alice", loaded.Name())
	suite.Equal(1000, loaded.Reward())
}

func (suite *MemberRepositoryIntegrationTestSuite) TestGet_NonExistentMember_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MemberRepositoryIntegrationTestSuite) TestUpdate_RewardChanges_Persisted() {
	ctx := context.Background()

	testMember, err := member.NewMember(kernel.NewUUID(), "Alice", 1000)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testMember))

	suite.Require().NoError(testMember.DebitReward(1000))
	suite.Require().NoError(suite.repository.Update(ctx, testMember))

	loaded, err := suite.repository.Get(ctx, testMember.ID())
	suite.Require().NoError(err)

	// Zero balance must round-trip, not be skipped as a zero value.
	suite.Equal(0, loaded.Reward())

	testMember.CreditReward(250)
	suite.Require().NoError(suite.repository.Update(ctx, testMember))

	loaded, err = suite.repository.Get(ctx, testMember.ID())
	suite.Require().NoError(err)
	suite.Equal(250, loaded.Reward())
}

func (suite *MemberRepositoryIntegrationTestSuite) TestUpdate_NonExistentMember_ReturnsError() {
	ctx := context.Background()

	testMember, err := member.NewMember(kernel.NewUUID(), "Ghost", 100)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, testMember)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestMemberRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryIntegrationTestSuite))
}
