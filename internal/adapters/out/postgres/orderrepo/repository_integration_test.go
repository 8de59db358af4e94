package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

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

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrievedOrder.ID().IsEqual(originalOrder.ID()))
	suite.Equal(originalOrder.Number(), retrievedOrder.Number())
	suite.True(retrievedOrder.BuyerID().IsEqual(originalOrder.BuyerID()))
	suite.True(retrievedOrder.SellerID().IsEqual(originalOrder.SellerID()))
	suite.Require().NotNil(retrievedOrder.ServiceID())
	suite.True(retrievedOrder.ServiceID().IsEqual(*originalOrder.ServiceID()))
	suite.Nil(retrievedOrder.CustomOrderID())
	suite.Equal(order.StatusInProgress, retrievedOrder.Status())
	suite.Equal(order.EscrowHeld, retrievedOrder.Escrow())
	suite.Equal(originalOrder.Terms().Tier(), retrievedOrder.Terms().Tier())
	suite.InDelta(originalOrder.Terms().Price().Amount(), retrievedOrder.Terms().Price().Amount(), 0.001)
	suite.Equal(originalOrder.Terms().DeliveryDays(), retrievedOrder.Terms().DeliveryDays())
	suite.Equal(originalOrder.Terms().Features(), retrievedOrder.Terms().Features())
	suite.Equal(originalOrder.Requirements(), retrievedOrder.Requirements())
	suite.Equal(originalOrder.RevisionAllowance(), retrievedOrder.RevisionAllowance())
	suite.WithinDuration(originalOrder.DeliveryDue(), retrievedOrder.DeliveryDue(), time.Second)
	suite.Equal(1, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredOrder_PersistsWorkflowState() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := testOrder.Deliver(testOrder.SellerID(), "first cut", []string{"video.mp4"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.StatusDelivered, retrievedOrder.Status())
	suite.Equal(order.EscrowHeld, retrievedOrder.Escrow())
	suite.Equal("first cut", retrievedOrder.DeliveryNote())
	suite.Equal([]string{"video.mp4"}, retrievedOrder.DeliveryFiles())
	suite.True(retrievedOrder.EverDelivered())
	suite.Equal(2, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := testOrder.Deliver(testOrder.SellerID(), "first cut", nil)
	suite.Require().NoError(err)

	// First writer wins; the row is now at version 2.
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// The same aggregate still carries version 1, so a second write loses.
	err = suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)

	var conflictErr *errs.ConcurrencyConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllOverdue_ReturnsOnlyUndeliveredPastDue() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	overdueOrder := suite.restoreTestOrder(order.StatusInProgress, false, time.Now().AddDate(0, 0, -2))
	deliveredLate := suite.restoreTestOrder(order.StatusInProgress, true, time.Now().AddDate(0, 0, -2))
	onSchedule := suite.restoreTestOrder(order.StatusInProgress, false, time.Now().AddDate(0, 0, 5))

	suite.Require().NoError(suite.repository.Add(ctx, overdueOrder))
	suite.Require().NoError(suite.repository.Add(ctx, deliveredLate))
	suite.Require().NoError(suite.repository.Add(ctx, onSchedule))

	overdue, err := suite.repository.GetAllOverdue(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(overdue, 1)
	suite.True(overdue[0].ID().IsEqual(overdueOrder.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllOverdue_NoOverdueOrders_ReturnsEmptySlice() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	onSchedule := suite.restoreTestOrder(order.StatusInProgress, false, time.Now().AddDate(0, 0, 5))
	suite.Require().NoError(suite.repository.Add(ctx, onSchedule))

	overdue, err := suite.repository.GetAllOverdue(ctx)
	suite.Require().NoError(err)

	suite.Empty(overdue)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic in-progress catalog order.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.NewMoney(250)
	suite.Require().NoError(err)
	terms, err := order.NewTerms("standard", price, 5, []string{"1 video", "2 stories"})
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		terms,
		"promote the spring collection",
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// restoreTestOrder builds an order in an arbitrary workflow state for query tests.
func (suite *OrderRepositoryIntegrationTestSuite) restoreTestOrder(
	status order.Status, everDelivered bool, deliveryDue time.Time,
) *order.Order {
	price, err := kernel.NewMoney(250)
	suite.Require().NoError(err)
	terms, err := order.NewTerms("standard", price, 5, nil)
	suite.Require().NoError(err)

	serviceID := kernel.NewUUID()
	deliveryNote := ""
	if everDelivered {
		deliveryNote = "late delivery"
	}

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		&serviceID,
		nil,
		kernel.NewUUID(),
		kernel.NewUUID(),
		terms,
		"promote the spring collection",
		status,
		order.EscrowHeld,
		0,
		1,
		deliveryNote,
		nil,
		everDelivered,
		time.Now().AddDate(0, 0, -7),
		deliveryDue,
		nil,
		1,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
