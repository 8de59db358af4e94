package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/customorderrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &customorderrepo.CustomOrderDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, custom_orders").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.CustomOrderRepository(), "First instance should provide custom order repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.CustomOrderRepository(), "Second instance should provide custom order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.ID().IsEqual(testOrder.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.ID().IsEqual(testOrder.ID()))
}

// TestUnitOfWork_AcceptProposalTransaction verifies the cross-aggregate write
// at the heart of the workflow: accepting a proposal resolves it and
// materializes its order in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AcceptProposalTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	proposal := createTestProposal()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CustomOrderRepository().Add(ctx, proposal)
	suite.Require().NoError(err)

	materialized, err := proposal.Accept(proposal.RecipientID(), kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)

	err = uow.CustomOrderRepository().Update(ctx, proposal)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, materialized)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both sides persisted and reference each other
	newUow := suite.factory.Create()

	retrievedProposal, err := newUow.CustomOrderRepository().Get(ctx, proposal.ID())
	suite.Require().NoError(err)
	suite.Equal(customorder.StatusAccepted, retrievedProposal.Status())
	suite.Require().NotNil(retrievedProposal.OrderID())
	suite.True(retrievedProposal.OrderID().IsEqual(materialized.ID()))

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, materialized.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.CustomOrderID())
	suite.True(retrievedOrder.CustomOrderID().IsEqual(proposal.ID()))
	suite.Equal(order.StatusInProgress, retrievedOrder.Status())
	suite.Equal(order.EscrowHeld, retrievedOrder.Escrow())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	proposal := createTestProposal()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.CustomOrderRepository().Add(ctx, proposal)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.CustomOrderRepository().Get(ctx, proposal.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.CustomOrderRepository().Get(ctx, proposal.ID())
	suite.Require().Error(err, "Proposal should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.ID().IsEqual(testOrder.ID()))

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.ID().IsEqual(testOrder.ID()))
}

// TestUnitOfWork_OrderLifecycleWorkflow walks the complete happy path of a
// proposal-born order: accept the proposal, deliver the work, accept the
// delivery, each step persisted through the unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Step 1: Accept a pending proposal and materialize its order
	proposal := createTestProposal()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CustomOrderRepository().Add(ctx, proposal)
	suite.Require().NoError(err)

	materialized, err := proposal.Accept(proposal.RecipientID(), kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)

	err = uow.CustomOrderRepository().Update(ctx, proposal)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, materialized)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 2: Seller delivers the work
	workUow := suite.factory.Create()
	err = workUow.Begin(ctx)
	suite.Require().NoError(err)

	loadedOrder, err := workUow.OrderRepository().Get(ctx, materialized.ID())
	suite.Require().NoError(err)

	err = loadedOrder.Deliver(loadedOrder.SellerID(), "final cut", []string{"reel.mp4"})
	suite.Require().NoError(err)
	err = workUow.OrderRepository().Update(ctx, loadedOrder)
	suite.Require().NoError(err)

	err = workUow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 3: Buyer accepts the delivery
	acceptUow := suite.factory.Create()
	err = acceptUow.Begin(ctx)
	suite.Require().NoError(err)

	loadedOrder, err = acceptUow.OrderRepository().Get(ctx, materialized.ID())
	suite.Require().NoError(err)

	err = loadedOrder.AcceptDelivery(loadedOrder.BuyerID(), time.Now())
	suite.Require().NoError(err)
	err = acceptUow.OrderRepository().Update(ctx, loadedOrder)
	suite.Require().NoError(err)

	err = acceptUow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	finalUow := suite.factory.Create()

	finalOrder, err := finalUow.OrderRepository().Get(ctx, materialized.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCompleted, finalOrder.Status())
	suite.Equal(order.EscrowReleased, finalOrder.Escrow())
	suite.NotNil(finalOrder.CompletedAt())
	suite.Equal("final cut", finalOrder.DeliveryNote())
	suite.Equal(3, finalOrder.Version())

	finalProposal, err := finalUow.CustomOrderRepository().Get(ctx, proposal.ID())
	suite.Require().NoError(err)
	suite.Equal(customorder.StatusAccepted, finalProposal.Status())
}

// TestUnitOfWork_WorkflowRollback tests rollback behavior during a cross-aggregate workflow.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	proposal := createTestProposal()
	err = uow.CustomOrderRepository().Add(ctx, proposal)
	suite.Require().NoError(err)

	materialized, err := proposal.Accept(proposal.RecipientID(), kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)

	err = uow.CustomOrderRepository().Update(ctx, proposal)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, materialized)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing was persisted
	newUow := suite.factory.Create()

	_, err = newUow.CustomOrderRepository().Get(ctx, proposal.ID())
	suite.Require().Error(err, "Proposal should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, materialized.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// createTestOrder creates a valid catalog order for testing purposes.
func createTestOrder() *order.Order {
	price, _ := kernel.NewMoney(300)
	terms, _ := order.NewTerms("premium", price, 7, []string{"1 video"})

	testOrder, _ := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		terms,
		"showcase the new product line",
		time.Now(),
	)
	return testOrder
}

// createTestProposal creates a pending proposal targeting a seller.
func createTestProposal() *customorder.CustomOrder {
	price, _ := kernel.NewMoney(800)

	proposal, _ := customorder.NewCustomOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.RoleSeller,
		"Festival aftermovie",
		"Three-day shoot with a 90 second cut",
		price,
		14,
		time.Now(),
	)
	return proposal
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
