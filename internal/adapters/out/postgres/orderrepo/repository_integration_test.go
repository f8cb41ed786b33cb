package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"meethere/internal/adapters/out/postgres/orderrepo"
	"meethere/internal/core/domain/model/order"
	"meethere/internal/core/domain/model/venue"
	"meethere/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testVenue, err := venue.RestoreVenue(3, "Court A", 100)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(testVenue, time.Now().Add(24*time.Hour), 2, "user1")
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsID() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.Require().Zero(testOrder.ID())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Positive(testOrder.ID())

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SequentialOrders_GetDistinctIDs() {
	ctx := context.Background()
	first := suite.createTestOrder()
	second := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.NotEqual(first.ID(), second.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), loaded.ID())
	suite.Equal("user1", loaded.UserID())
	suite.Equal(int64(3), loaded.VenueID())
	suite.Equal(2, loaded.Hours())
	suite.Equal(200, loaded.Total())
	suite.Equal(order.NoAudit, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), 12345)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ExistingOrder_PersistsChanges() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	newVenue, err := venue.RestoreVenue(5, "Court B", 150)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Resubmit(newVenue, time.Now().Add(48*time.Hour), 3, "user1"))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(5), loaded.VenueID())
	suite.Equal(3, loaded.Hours())
	suite.Equal(450, loaded.Total())
	suite.Equal(order.NoAudit, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()
	missing, err := order.RestoreOrder(
		9999, "user1", 3, time.Now().Add(24*time.Hour), 2, 200, time.Now(), order.NoAudit,
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_ChangesOnlyStatus() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.UpdateStatus(ctx, testOrder.ID(), order.Wait))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Wait, loaded.Status())
	suite.Equal(testOrder.Total(), loaded.Total())
	suite.Equal(testOrder.Hours(), loaded.Hours())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_MissingOrder_ReturnsNotFound() {
	err := suite.repository.UpdateStatus(context.Background(), 54321, order.Reject)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingBefore_FiltersByStatusAndStart() {
	ctx := context.Background()

	// Stale pending order: NoAudit with a past start time.
	stale, err := order.RestoreOrder(
		0, "user1", 3, time.Now().Add(-2*time.Hour), 2, 200, time.Now().Add(-24*time.Hour), order.NoAudit,
	)
	suite.Require().NoError(err)

	// Future pending order must not be picked up.
	future := suite.createTestOrder()

	// Past but already reviewed order must not be picked up either.
	reviewed, err := order.RestoreOrder(
		0, "user2", 3, time.Now().Add(-3*time.Hour), 1, 100, time.Now().Add(-24*time.Hour), order.Wait,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, future))
	suite.Require().NoError(suite.repository.Add(ctx, reviewed))

	pending, err := suite.repository.GetAllPendingBefore(ctx, time.Now())
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(stale.ID(), pending[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ExistingOrder_Removes() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	_, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_MissingOrder_IsNoOp() {
	err := suite.repository.Delete(context.Background(), 777)
	suite.Require().NoError(err)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
