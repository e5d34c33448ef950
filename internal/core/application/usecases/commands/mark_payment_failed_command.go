package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrMarkPaymentFailedCommandIsNotConstructed = errors.New(
	"MarkPaymentFailedCommand must be created via NewMarkPaymentFailedCommand constructor",
)

// MarkPaymentFailedCommand represents a failed payment attempt reported by
// the payment gateway. The order stays open for another attempt; the failure
// is recorded in the workflow history.
type MarkPaymentFailedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewMarkPaymentFailedCommand creates a command to record a payment failure.
func NewMarkPaymentFailedCommand(orderID kernel.UUID, reason string) (MarkPaymentFailedCommand, error) {
	cmd := MarkPaymentFailedCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkPaymentFailedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPaymentFailedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentFailedCommandIsNotConstructed)
}

// OrderID returns the order whose payment failed.
func (c MarkPaymentFailedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the gateway-reported failure reason, may be empty.
func (c MarkPaymentFailedCommand) Reason() string {
	return c.reason
}

func (c *MarkPaymentFailedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
