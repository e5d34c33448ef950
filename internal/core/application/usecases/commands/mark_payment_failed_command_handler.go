package commands

import (
	"context"

	"booking/internal/core/domain/model/order"
)

// MarkPaymentFailedCommandHandler records failed payment attempts on orders.
type MarkPaymentFailedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPaymentFailedCommandHandler creates a handler for payment failure events.
func NewMarkPaymentFailedCommandHandler(uowFactory OrderUoWFactory) MarkPaymentFailedCommandHandler {
	return MarkPaymentFailedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment failure command. The payment moves to the
// failed state and the attempt is kept in the workflow history.
func (h *MarkPaymentFailedCommandHandler) Handle(ctx context.Context, cmd MarkPaymentFailedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (*order.Order, error) {
		return o.MarkPaymentFailed(cmd.Reason())
	})
}
