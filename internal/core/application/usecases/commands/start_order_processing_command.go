package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrStartOrderProcessingCommandIsNotConstructed = errors.New(
	"StartOrderProcessingCommand must be created via NewStartOrderProcessingCommand constructor",
)

// StartOrderProcessingCommand represents a request to begin fulfilment of a
// confirmed, paid order.
type StartOrderProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderProcessingCommand creates a command to start order fulfilment.
func NewStartOrderProcessingCommand(orderID kernel.UUID) (StartOrderProcessingCommand, error) {
	cmd := StartOrderProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartOrderProcessingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderProcessingCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderProcessingCommandIsNotConstructed)
}

// OrderID returns the order to start processing.
func (c StartOrderProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartOrderProcessingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
