package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrUpdateCartCurrencyCommandIsNotConstructed = errors.New(
	"UpdateCartCurrencyCommand must be created via NewUpdateCartCurrencyCommand constructor",
)

// UpdateCartCurrencyCommand represents a request to switch a cart to another
// currency. Item prices are converted with it, so the cart invariant that all
// items share the cart currency keeps holding.
type UpdateCartCurrencyCommand struct { //nolint:recvcheck //using for validation
	cartID   kernel.UUID
	currency kernel.Currency

	guard guard.ConstructorGuard
}

// NewUpdateCartCurrencyCommand creates a command to change a cart's currency.
func NewUpdateCartCurrencyCommand(cartID kernel.UUID, currency kernel.Currency) (UpdateCartCurrencyCommand, error) {
	cmd := UpdateCartCurrencyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setCurrency(currency),
	); err != nil {
		return UpdateCartCurrencyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartCurrencyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartCurrencyCommandIsNotConstructed)
}

// CartID returns the target cart's identifier.
func (c UpdateCartCurrencyCommand) CartID() kernel.UUID {
	return c.cartID
}

// Currency returns the currency the cart should switch to.
func (c UpdateCartCurrencyCommand) Currency() kernel.Currency {
	return c.currency
}

func (c *UpdateCartCurrencyCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *UpdateCartCurrencyCommand) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	c.currency = currency
	return nil
}
