package commands

import (
	"context"

	"booking/internal/core/domain/model/order"
)

// StartOrderProcessingCommandHandler drives the confirmed -> processing
// transition.
type StartOrderProcessingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderProcessingCommandHandler creates a handler for starting fulfilment.
func NewStartOrderProcessingCommandHandler(uowFactory OrderUoWFactory) StartOrderProcessingCommandHandler {
	return StartOrderProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
// Fails with order.ErrInvalidStateTransition unless the order is confirmed
// and paid.
func (h *StartOrderProcessingCommandHandler) Handle(ctx context.Context, cmd StartOrderProcessingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) (*order.Order, error) {
		return o.StartProcessing()
	})
}
