package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrAssignCartToUserCommandIsNotConstructed = errors.New(
	"AssignCartToUserCommand must be created via NewAssignCartToUserCommand constructor",
)

// AssignCartToUserCommand represents a request to attach a guest cart to an
// authenticated user, typically after login.
type AssignCartToUserCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCartToUserCommand creates a command to attach a cart to a user.
func NewAssignCartToUserCommand(cartID, userID kernel.UUID) (AssignCartToUserCommand, error) {
	cmd := AssignCartToUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setUserID(userID),
	); err != nil {
		return AssignCartToUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCartToUserCommand) Validate() error {
	return c.guard.Validate(ErrAssignCartToUserCommandIsNotConstructed)
}

// CartID returns the target cart's identifier.
func (c AssignCartToUserCommand) CartID() kernel.UUID {
	return c.cartID
}

// UserID returns the user taking ownership of the cart.
func (c AssignCartToUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *AssignCartToUserCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *AssignCartToUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
