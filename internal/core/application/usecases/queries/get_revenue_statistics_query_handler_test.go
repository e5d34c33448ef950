package queries_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/adapters/out/postgres/orderrepo"
	"booking/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetRevenueStatisticsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRevenueStatisticsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetRevenueStatisticsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetRevenueStatisticsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetRevenueStatisticsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetRevenueStatisticsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

// seedPaidOrder moves a seeded order to the paid state and persists it.
func (suite *GetRevenueStatisticsQueryHandlerTestSuite) seedPaidOrder(total float64) {
	ctx := context.Background()

	o := seedOrder(suite.T(), suite.orderRepo, nil, total)

	confirmed, err := o.Confirm()
	suite.Require().NoError(err)
	paid, err := confirmed.MarkAsPaid("txn-" + o.OrderNumber())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(ctx, paid))
}

func (suite *GetRevenueStatisticsQueryHandlerTestSuite) TestHandle_NoPaidOrders_ReturnsEmptySlice() {
	// Pending order never counts towards revenue
	seedOrder(suite.T(), suite.orderRepo, nil, 100)

	query, err := queries.NewGetRevenueStatisticsQuery(time.Time{}, time.Time{})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRevenueStatisticsQueryHandlerTestSuite) TestHandle_AggregatesPaidOrders() {
	suite.seedPaidOrder(100)
	suite.seedPaidOrder(200)
	seedOrder(suite.T(), suite.orderRepo, nil, 999) // unpaid, excluded

	query, err := queries.NewGetRevenueStatisticsQuery(time.Time{}, time.Time{})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("USD", result[0].Currency)
	suite.Equal(int64(2), result[0].OrderCount)
	suite.InDelta(300.0, result[0].TotalRevenue, 0.001)
	suite.InDelta(150.0, result[0].AverageOrderValue, 0.001)
}

func (suite *GetRevenueStatisticsQueryHandlerTestSuite) TestHandle_PeriodFilterExcludesOutsideOrders() {
	suite.seedPaidOrder(100)

	// Period entirely in the past: nothing qualifies
	from := time.Now().AddDate(0, 0, -14)
	to := time.Now().AddDate(0, 0, -7)
	query, err := queries.NewGetRevenueStatisticsQuery(from, to)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)

	// Period covering now: the paid order qualifies
	query, err = queries.NewGetRevenueStatisticsQuery(time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	suite.Require().NoError(err)

	result, err = suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(int64(1), result[0].OrderCount)
}

func (suite *GetRevenueStatisticsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetRevenueStatisticsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetRevenueStatisticsQuery constructor")
}

func TestGetRevenueStatisticsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRevenueStatisticsQueryHandlerTestSuite))
}
