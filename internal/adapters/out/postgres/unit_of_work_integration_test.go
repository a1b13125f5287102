package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "maitred/internal/adapters/out/postgres"
	"maitred/internal/adapters/out/postgres/cartrepo"
	"maitred/internal/adapters/out/postgres/orderrepo"
	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/core/domain/model/order"
	"maitred/internal/core/ports"

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}, &cartrepo.CartDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, carts").Error
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

	testOrder := createTestOrder(suite.Require().NoError)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_CheckoutTransaction verifies the checkout write pattern:
// the order insert and the cart delete commit or roll back together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutTransaction() {
	ctx := context.Background()

	cart := createTestCart(suite.Require().NoError, "session-1")
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.CartRepository().Upsert(ctx, cart))

	testOrder := createTestOrder(suite.Require().NoError)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.CartRepository().Delete(ctx, "session-1"))

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Number(), retrievedOrder.Number())

	_, err = newUow.CartRepository().Get(ctx, "session-1")
	suite.Require().Error(err, "Cart should be gone after checkout commits")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()

	cart := createTestCart(suite.Require().NoError, "session-1")
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.CartRepository().Upsert(ctx, cart))

	testOrder := createTestOrder(suite.Require().NoError)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.CartRepository().Delete(ctx, "session-1"))

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()

	_, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	retrievedCart, err := newUow.CartRepository().Get(ctx, "session-1")
	suite.Require().NoError(err, "Cart should survive the rollback")
	suite.Equal("session-1", retrievedCart.SessionID())
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(suite.Require().NoError)
	order2 := createTestOrder(suite.Require().NoError)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))

	// The second unit of work must not see uncommitted work of the first.
	_, err := uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err)

	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Commit(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err)
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err)
}

// createTestOrder creates a placed order with a single dinner line.
func createTestOrder(noError func(err error, msgAndArgs ...interface{})) *order.Order {
	dinnerID := kernel.NewUUID()
	styleID := kernel.NewUUID()

	line, err := order.NewLine(order.NewLineParams{
		DinnerID:  &dinnerID,
		StyleID:   &styleID,
		Name:      "Valentine Dinner",
		StyleName: "Deluxe",
		Quantity:  1,
		UnitPrice: 55000,
	})
	noError(err)

	testOrder, err := order.NewOrder(order.NewOrderParams{
		ID:         kernel.NewUUID(),
		Address:    "서울시 강남구 테헤란로 1",
		DeliveryAt: time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC),
		Lines:      []order.Line{line},
		PlacedAt:   time.Now().UTC(),
	})
	noError(err)
	return testOrder
}

// createTestCart creates a cart in the confirming state for a session.
func createTestCart(noError func(err error, msgAndArgs ...interface{}), sessionID string) *draft.Cart {
	cart, err := draft.NewCart(sessionID)
	noError(err)
	cart.ApplyTurn(draft.ApplyTurnParams{
		State:   flow.StateConfirming,
		Address: "서울시 강남구 테헤란로 1",
		At:      time.Now().UTC(),
	})
	return cart
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
