// Package http exposes the booking REST API on top of the application layer.
// Handlers translate between JSON DTOs and commands/queries; all business
// rules stay in the domain model.
package http

import (
	"context"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CartReader provides read access to cart aggregates for GET endpoints.
// Satisfied by the postgres cart repository.
type CartReader interface {
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)
	GetBySession(ctx context.Context, sessionID string) (*cart.Cart, error)
}

// OrderReader provides read access to order aggregates for GET endpoints.
// Satisfied by the postgres order repository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)
}

// CartCache is the read-through cache in front of CartReader.Get.
// Satisfied by the redis cart cache; may be nil to disable caching.
type CartCache interface {
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)
	Set(ctx context.Context, aggregate *cart.Cart) error
	Delete(ctx context.Context, id kernel.UUID) error
}

// CommandHandlers groups the write-side use case handlers the server needs.
type CommandHandlers struct {
	CreateCart         commands.CreateCartCommandHandler
	AddCartItem        commands.AddCartItemCommandHandler
	UpdateItemQuantity commands.UpdateItemQuantityCommandHandler
	RemoveCartItem     commands.RemoveCartItemCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	UpdateCartCurrency commands.UpdateCartCurrencyCommandHandler
	AssignCartToUser   commands.AssignCartToUserCommandHandler
	MergeGuestCart     commands.MergeGuestCartCommandHandler
	ExtendCart         commands.ExtendCartExpirationCommandHandler
	Checkout           commands.CheckoutCommandHandler

	ConfirmOrder         commands.ConfirmOrderCommandHandler
	MarkOrderPaid        commands.MarkOrderPaidCommandHandler
	MarkPaymentFailed    commands.MarkPaymentFailedCommandHandler
	StartOrderProcessing commands.StartOrderProcessingCommandHandler
	CompleteOrder        commands.CompleteOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	RefundOrder          commands.RefundOrderCommandHandler
}

// QueryHandlers groups the read-side use case handlers the server needs.
type QueryHandlers struct {
	CustomerOrders    queries.GetCustomerOrdersQueryHandler
	RevenueStatistics queries.GetRevenueStatisticsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	carts    CartReader
	orders   OrderReader
	cache    CartCache
}

// NewServer creates the HTTP server. Pass a nil cache to serve cart reads
// straight from the repository.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	carts CartReader,
	orders OrderReader,
	cache CartCache,
) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		carts:    carts,
		orders:   orders,
		cache:    cache,
	}
}

// RegisterRoutes mounts all API endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/carts", s.CreateCart)
	api.GET("/carts/:cartId", s.GetCart)
	api.GET("/users/:userId/cart", s.GetUserCart)
	api.GET("/sessions/:sessionId/cart", s.GetSessionCart)
	api.POST("/carts/:cartId/items", s.AddCartItem)
	api.PATCH("/carts/:cartId/items/:itemId", s.UpdateItemQuantity)
	api.DELETE("/carts/:cartId/items/:itemId", s.RemoveCartItem)
	api.DELETE("/carts/:cartId/items", s.ClearCart)
	api.PATCH("/carts/:cartId/currency", s.UpdateCartCurrency)
	api.POST("/carts/:cartId/assign", s.AssignCartToUser)
	api.POST("/carts/:cartId/merge", s.MergeGuestCart)
	api.POST("/carts/:cartId/extend", s.ExtendCartExpiration)
	api.GET("/carts/:cartId/validation", s.ValidateCart)
	api.POST("/carts/:cartId/checkout", s.Checkout)

	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/by-number/:orderNumber", s.GetOrderByNumber)
	api.GET("/users/:userId/orders", s.GetCustomerOrders)
	api.GET("/orders/statistics/revenue", s.GetRevenueStatistics)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/payment", s.MarkOrderPaid)
	api.POST("/orders/:orderId/payment-failure", s.MarkPaymentFailed)
	api.POST("/orders/:orderId/processing", s.StartOrderProcessing)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/refund", s.RefundOrder)
}

// loadCart serves cart reads through the cache when one is configured.
func (s *Server) loadCart(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cached, nil
		}
	}

	aggregate, err := s.carts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, aggregate)
	}

	return aggregate, nil
}

// evictCart drops the cached copy after a mutation. Best effort: a failed
// eviction only delays freshness until the TTL runs out.
func (s *Server) evictCart(ctx context.Context, id kernel.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}
}
