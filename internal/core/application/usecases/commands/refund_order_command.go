package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand represents a request to return money for a paid order.
// A nil amount refunds the full total.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  *kernel.Price
	reason  string

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a command to refund an order.
func NewRefundOrderCommand(orderID kernel.UUID, amount *kernel.Price, reason string) (RefundOrderCommand, error) {
	cmd := RefundOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return RefundOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the order to refund.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the refund amount, or nil for a full refund.
func (c RefundOrderCommand) Amount() *kernel.Price {
	return c.amount
}

// Reason returns the refund reason, may be empty.
func (c RefundOrderCommand) Reason() string {
	return c.reason
}

func (c *RefundOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundOrderCommand) setAmount(amount *kernel.Price) error {
	if amount == nil {
		return nil
	}
	if err := amount.Validate(); err != nil {
		return err
	}

	c.amount = amount
	return nil
}
