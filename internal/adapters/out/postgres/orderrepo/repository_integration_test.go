package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"maitred/internal/adapters/out/postgres/orderrepo"
	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/core/domain/model/order"
	"maitred/internal/pkg/errs"

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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

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
	suite.assertLineCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Number(), retrieved.Number())
	suite.Equal(original.Address(), retrieved.Address())
	suite.Equal(original.Occasion(), retrieved.Occasion())
	suite.Equal(original.Memo(), retrieved.Memo())
	suite.Equal(original.GrandTotal(), retrieved.GrandTotal())
	suite.Equal(order.Placed, retrieved.Status())

	suite.Require().Len(retrieved.Lines(), 2)
	first := retrieved.Lines()[0]
	suite.Equal("Valentine Dinner", first.Name())
	suite.Equal("Deluxe", first.StyleName())
	suite.Equal(1, first.Quantity())
	suite.Equal(55000, first.UnitPrice())
	suite.Equal([]string{"wine"}, first.Excluded())

	second := retrieved.Lines()[1]
	suite.Equal("Wine", second.Name())
	suite.Equal(2, second.Quantity())
	suite.Equal(60000, second.TotalPrice())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByNumber(ctx, original.Number())
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_UnknownNumber_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.GetByNumber(ctx, "ORD-00000000")
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitionPersists() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	suite.Require().NoError(original.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrieved.Status())
	suite.Require().Len(retrieved.Lines(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestOrder()
	err := suite.repository.Update(ctx, missing)

	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPlacedStatus_ReturnsOnlyPlacedOrders() {
	ctx := context.Background()

	placed := suite.createTestOrder()
	accepted := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, placed))
	suite.Require().NoError(suite.repository.Add(ctx, accepted))

	suite.Require().NoError(accepted.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, accepted))

	placedOrders, err := suite.repository.GetAllInPlacedStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(placedOrders, 1)
	suite.Equal(placed.ID(), placedOrders[0].ID())
	suite.Equal(order.Placed, placedOrders[0].Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPlacedStatus_NoPlacedOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	placedOrders, err := suite.repository.GetAllInPlacedStatus(ctx)
	suite.Require().NoError(err)
	suite.Empty(placedOrders)
}

// createTestOrder creates a placed order with one dinner line and one
// extra item line.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	dinnerID := kernel.NewUUID()
	styleID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	dinnerLine, err := order.NewLine(order.NewLineParams{
		DinnerID:   &dinnerID,
		StyleID:    &styleID,
		Name:       "Valentine Dinner",
		StyleName:  "Deluxe",
		Quantity:   1,
		UnitPrice:  55000,
		Excluded:   []string{"wine"},
		Components: map[string]int{"steak": 2},
	})
	suite.Require().NoError(err)

	extraLine, err := order.NewLine(order.NewLineParams{
		MenuItemID: &menuItemID,
		Name:       "Wine",
		Quantity:   2,
		UnitPrice:  30000,
	})
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(order.NewOrderParams{
		ID:         kernel.NewUUID(),
		Address:    "서울시 강남구 테헤란로 1",
		DeliveryAt: time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC),
		Occasion:   "기념일",
		Memo:       "문 앞에 놓아주세요",
		Lines:      []order.Line{dinnerLine, extraLine},
		PlacedAt:   time.Now().UTC(),
	})
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

// assertLineCount verifies the number of order lines in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertLineCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
