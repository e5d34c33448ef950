package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
		"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
	)
	ErrTransactionIDIsRequired = errors.New("transaction id is required")
)

// MarkOrderPaidCommand represents a successful payment-gateway outcome for
// an order.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transactionID string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to record a captured payment.
func NewMarkOrderPaidCommand(orderID kernel.UUID, transactionID string) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTransactionID(transactionID),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the paid order.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransactionID returns the payment gateway transaction reference.
func (c MarkOrderPaidCommand) TransactionID() string {
	return c.transactionID
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderPaidCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}

	c.transactionID = transactionID
	return nil
}
