package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "booking/internal/adapters/out/postgres"
	"booking/internal/adapters/out/postgres/cartrepo"
	"booking/internal/adapters/out/postgres/orderrepo"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/ports"

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
	err = db.AutoMigrate(&cartrepo.CartDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE carts, orders").Error
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
	suite.NotNil(uow1.CartRepository(), "First instance should provide cart repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.CartRepository(), "Second instance should provide cart repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCart := createTestCart()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CartRepository().Add(ctx, testCart)
	suite.Require().NoError(err)

	// Verify cart exists within transaction
	retrievedCart, err := uow.CartRepository().Get(ctx, testCart.ID())
	suite.Require().NoError(err)
	suite.Equal(testCart.ID(), retrievedCart.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify cart persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedCart, err = newUow.CartRepository().Get(ctx, testCart.ID())
	suite.Require().NoError(err)
	suite.Equal(testCart.ID(), retrievedCart.ID())
	suite.Len(retrievedCart.Items(), len(testCart.Items()))
}

// TestUnitOfWork_CheckoutTransaction verifies the checkout pattern: the order
// is created and the source cart removed atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutTransaction() {
	ctx := context.Background()

	testCart := createTestCart()
	initialUow := suite.factory.Create()
	err := initialUow.CartRepository().Add(ctx, testCart)
	suite.Require().NoError(err)

	testOrder := createTestOrder(nil)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.CartRepository().Delete(ctx, testCart.ID())
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.OrderNumber(), retrievedOrder.OrderNumber())
	suite.Equal(order.StatusPending, retrievedOrder.Status())

	_, err = newUow.CartRepository().Get(ctx, testCart.ID())
	suite.Require().Error(err, "Cart should be gone after checkout")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCart := createTestCart()
	testOrder := createTestOrder(nil)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CartRepository().Add(ctx, testCart)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.CartRepository().Get(ctx, testCart.ID())
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.CartRepository().Get(ctx, testCart.ID())
	suite.Require().Error(err, "Cart should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(nil)
	order2 := createTestOrder(nil)

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

	testCart := createTestCart()

	// Add cart without beginning transaction (should auto-commit)
	err := uow.CartRepository().Add(ctx, testCart)
	suite.Require().NoError(err)

	retrievedCart, err := uow.CartRepository().Get(ctx, testCart.ID())
	suite.Require().NoError(err)
	suite.Equal(testCart.ID(), retrievedCart.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedCart, err = newUow.CartRepository().Get(ctx, testCart.ID())
	suite.Require().NoError(err)
	suite.Equal(testCart.ID(), retrievedCart.ID())
}

// TestUnitOfWork_OrderFulfillmentWorkflow tests the complete order lifecycle
// with every state change persisted and read back through the repository.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderFulfillmentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(nil)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	current, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	confirmed, err := current.Confirm()
	suite.Require().NoError(err)
	paid, err := confirmed.MarkAsPaid("txn-uow-1")
	suite.Require().NoError(err)
	processing, err := paid.StartProcessing()
	suite.Require().NoError(err)

	err = uow.OrderRepository().Update(ctx, processing)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify persisted state and workflow history
	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusProcessing, retrieved.Status())
	suite.Equal(order.PaymentPaid, retrieved.PaymentStatus())
	suite.Equal("txn-uow-1", retrieved.TransactionID())
	suite.Len(retrieved.WorkflowSteps(), 4)

	inProcessing, err := newUow.OrderRepository().GetAllInProcessingStatus(ctx)
	suite.Require().NoError(err)
	suite.Len(inProcessing, 1)
	suite.Equal(testOrder.ID(), inProcessing[0].ID())
}

// TestUnitOfWork_QueryConsistency verifies query results are consistent within transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QueryConsistency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	userID := kernel.NewUUID()
	order1 := createTestOrder(&userID)
	order2 := createTestOrder(&userID)
	order3 := createTestOrder(nil)

	err := uow.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, order3)
	suite.Require().NoError(err)

	userOrders, err := uow.OrderRepository().GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(userOrders, 2, "Guest order should not appear in user history")

	byNumber, err := uow.OrderRepository().GetByOrderNumber(ctx, order3.OrderNumber())
	suite.Require().NoError(err)
	suite.Equal(order3.ID(), byNumber.ID())

	inProcessing, err := uow.OrderRepository().GetAllInProcessingStatus(ctx)
	suite.Require().NoError(err)
	suite.Empty(inProcessing, "No order has started processing yet")
}

// createTestCart creates a valid cart with one line item for testing purposes.
func createTestCart() *cart.Cart {
	currency, _ := kernel.CurrencyFromCode("USD")
	c, _ := cart.NewCart(kernel.NewUUID(), nil, "session-"+kernel.NewUUID().String(), currency)

	unitPrice, _ := kernel.NewPrice(50, currency)
	item, _ := cart.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), cart.ProductTypeTour,
		"Test Tour", "test-tour", "",
		unitPrice, 2, "", "", nil, nil,
	)

	c, _ = c.AddItem(item)
	return c
}

// createTestOrder creates a valid pending order for testing purposes.
func createTestOrder(userID *kernel.UUID) *order.Order {
	currency, _ := kernel.CurrencyFromCode("USD")
	unitPrice, _ := kernel.NewPrice(50, currency)

	cartItem, _ := cart.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), cart.ProductTypeTour,
		"Test Tour", "test-tour", "",
		unitPrice, 2, "", "", nil, nil,
	)
	item, _ := order.NewItemFromCart(cartItem, nil, "")

	participant, _ := order.NewParticipant(kernel.NewUUID(), "Test", "Participant", nil, "")
	contactInfo, _ := kernel.NewContactInfo("Test", "Customer", "test@example.com", "")

	subtotal, _ := kernel.NewPrice(100, currency)
	zero, _ := kernel.NewPrice(0, currency)

	orderNumber := "ORD-TEST-" + kernel.NewUUID().String()[:8]
	o, _ := order.NewOrder(
		kernel.NewUUID(), orderNumber, userID,
		[]order.Item{item}, []order.Participant{participant},
		contactInfo, subtotal, zero, zero, subtotal,
		"card", "",
	)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
