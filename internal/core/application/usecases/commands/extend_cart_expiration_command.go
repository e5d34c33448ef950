package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrExtendCartExpirationCommandIsNotConstructed = errors.New(
		"ExtendCartExpirationCommand must be created via NewExtendCartExpirationCommand constructor",
	)
	ErrHoursIsInvalid = errors.New("hours must not be negative")
)

// ExtendCartExpirationCommand represents a request to push a cart's expiry
// further into the future. Zero hours means the default extension window.
type ExtendCartExpirationCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID
	hours  int

	guard guard.ConstructorGuard
}

// NewExtendCartExpirationCommand creates a command to extend a cart's expiry.
func NewExtendCartExpirationCommand(cartID kernel.UUID, hours int) (ExtendCartExpirationCommand, error) {
	cmd := ExtendCartExpirationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setHours(hours),
	); err != nil {
		return ExtendCartExpirationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExtendCartExpirationCommand) Validate() error {
	return c.guard.Validate(ErrExtendCartExpirationCommandIsNotConstructed)
}

// CartID returns the target cart's identifier.
func (c ExtendCartExpirationCommand) CartID() kernel.UUID {
	return c.cartID
}

// Hours returns the extension window; zero selects the default.
func (c ExtendCartExpirationCommand) Hours() int {
	return c.hours
}

func (c *ExtendCartExpirationCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *ExtendCartExpirationCommand) setHours(hours int) error {
	if hours < 0 {
		return ErrHoursIsInvalid
	}

	c.hours = hours
	return nil
}
