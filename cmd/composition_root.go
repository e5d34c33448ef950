package cmd

import (
	apphttp "booking/internal/adapters/in/http"
	"booking/internal/adapters/out/postgres"
	"booking/internal/adapters/out/postgres/cartrepo"
	"booking/internal/adapters/out/postgres/orderrepo"
	"booking/internal/adapters/out/rediscache"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	redisClient *redis.Client
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		redisClient: redisClient,
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCartCommandHandler() commands.CreateCartCommandHandler {
	return commands.NewCreateCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemQuantityCommandHandler() commands.UpdateItemQuantityCommandHandler {
	return commands.NewUpdateItemQuantityCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartCurrencyCommandHandler() commands.UpdateCartCurrencyCommandHandler {
	return commands.NewUpdateCartCurrencyCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateAssignCartToUserCommandHandler() commands.AssignCartToUserCommandHandler {
	return commands.NewAssignCartToUserCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateMergeGuestCartCommandHandler() commands.MergeGuestCartCommandHandler {
	return commands.NewMergeGuestCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateExtendCartExpirationCommandHandler() commands.ExtendCartExpirationCommandHandler {
	return commands.NewExtendCartExpirationCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCleanupExpiredCartsCommandHandler() commands.CleanupExpiredCartsCommandHandler {
	return commands.NewCleanupExpiredCartsCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.crossAggregateUoWFactory(), services.NewCheckoutService())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkPaymentFailedCommandHandler() commands.MarkPaymentFailedCommandHandler {
	return commands.NewMarkPaymentFailedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartOrderProcessingCommandHandler() commands.StartOrderProcessingCommandHandler {
	return commands.NewStartOrderProcessingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	return commands.NewRefundOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueStatisticsQueryHandler() queries.GetRevenueStatisticsQueryHandler {
	return queries.NewGetRevenueStatisticsQueryHandler(c.gormDB)
}

// CreateCartReader builds a repository for read-only cart access outside of
// a unit of work.
func (c *CompositionRoot) CreateCartReader() *cartrepo.GormCartRepository {
	return cartrepo.NewGormCartRepository(c.gormDB, noopTracker{})
}

// CreateOrderReader builds a repository for read-only order access outside
// of a unit of work.
func (c *CompositionRoot) CreateOrderReader() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
}

// NewHTTPServer assembles the REST API server with all use case handlers.
func (c *CompositionRoot) NewHTTPServer() *apphttp.Server {
	var cache apphttp.CartCache
	if c.redisClient != nil {
		cache = rediscache.NewCartCache(c.redisClient)
	}

	return apphttp.NewServer(
		apphttp.CommandHandlers{
			CreateCart:         c.CreateCreateCartCommandHandler(),
			AddCartItem:        c.CreateAddCartItemCommandHandler(),
			UpdateItemQuantity: c.CreateUpdateItemQuantityCommandHandler(),
			RemoveCartItem:     c.CreateRemoveCartItemCommandHandler(),
			ClearCart:          c.CreateClearCartCommandHandler(),
			UpdateCartCurrency: c.CreateUpdateCartCurrencyCommandHandler(),
			AssignCartToUser:   c.CreateAssignCartToUserCommandHandler(),
			MergeGuestCart:     c.CreateMergeGuestCartCommandHandler(),
			ExtendCart:         c.CreateExtendCartExpirationCommandHandler(),
			Checkout:           c.CreateCheckoutCommandHandler(),

			ConfirmOrder:         c.CreateConfirmOrderCommandHandler(),
			MarkOrderPaid:        c.CreateMarkOrderPaidCommandHandler(),
			MarkPaymentFailed:    c.CreateMarkPaymentFailedCommandHandler(),
			StartOrderProcessing: c.CreateStartOrderProcessingCommandHandler(),
			CompleteOrder:        c.CreateCompleteOrderCommandHandler(),
			CancelOrder:          c.CreateCancelOrderCommandHandler(),
			RefundOrder:          c.CreateRefundOrderCommandHandler(),
		},
		apphttp.QueryHandlers{
			CustomerOrders:    c.CreateGetCustomerOrdersQueryHandler(),
			RevenueStatistics: c.CreateGetRevenueStatisticsQueryHandler(),
		},
		c.CreateCartReader(),
		c.CreateOrderReader(),
		cache,
	)
}

// noopTracker satisfies the repository tracker interface for read paths
// that never participate in a transaction.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
