package http

import (
	"net/http"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	aggregate, err := s.orders.Get(ctx.Request().Context(), orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(aggregate))
}

// GetOrderByNumber handles GET /api/v1/orders/by-number/:orderNumber.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	aggregate, err := s.orders.GetByOrderNumber(ctx.Request().Context(), ctx.Param("orderNumber"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(aggregate))
}

// GetCustomerOrders handles GET /api/v1/users/:userId/orders.
// Returns flat order summaries, newest first.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id", err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid query", err)
	}

	orders, err := s.queries.CustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetRevenueStatistics handles GET /api/v1/orders/statistics/revenue.
// Optional from and to query parameters are RFC 3339 timestamps; an absent
// bound leaves that side of the period open.
func (s *Server) GetRevenueStatistics(ctx echo.Context) error {
	from, err := parsePeriodBound(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from parameter", err)
	}

	to, err := parsePeriodBound(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to parameter", err)
	}

	query, err := queries.NewGetRevenueStatisticsQuery(from, to)
	if err != nil {
		return badRequest(ctx, "Invalid period", err)
	}

	statistics, err := s.queries.RevenueStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statistics)
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	if err = s.commands.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// MarkOrderPaid handles POST /api/v1/orders/:orderId/payment.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	var request MarkOrderPaidRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, request.TransactionID)
	if err != nil {
		return badRequest(ctx, "Invalid payment data", err)
	}

	if err = s.commands.MarkOrderPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// MarkPaymentFailed handles POST /api/v1/orders/:orderId/payment-failure.
func (s *Server) MarkPaymentFailed(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	var request ReasonRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	cmd, err := commands.NewMarkPaymentFailedCommand(orderID, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid payment failure data", err)
	}

	if err = s.commands.MarkPaymentFailed.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// StartOrderProcessing handles POST /api/v1/orders/:orderId/processing.
func (s *Server) StartOrderProcessing(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	cmd, err := commands.NewStartOrderProcessingCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	if err = s.commands.StartOrderProcessing.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	if err = s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	var request ReasonRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data", err)
	}

	if err = s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// RefundOrder handles POST /api/v1/orders/:orderId/refund.
// An absent amount refunds the full order total.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	var request RefundOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	amount, err := parseOptionalMoney(request.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid refund amount", err)
	}

	cmd, err := commands.NewRefundOrderCommand(orderID, amount, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid refund data", err)
	}

	if err = s.commands.RefundOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// respondWithOrder reads the order back and writes the full representation.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	aggregate, err := s.orders.Get(ctx.Request().Context(), orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(aggregate))
}

func parsePeriodBound(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
