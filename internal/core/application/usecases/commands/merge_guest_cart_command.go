package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrMergeGuestCartCommandIsNotConstructed = errors.New(
	"MergeGuestCartCommand must be created via NewMergeGuestCartCommand constructor",
)

// MergeGuestCartCommand represents a request to fold a guest cart into the
// cart of a user who just logged in. When the user has no cart yet the guest
// cart simply changes owner; otherwise the guest items merge into the user
// cart line by line and the guest cart is removed.
type MergeGuestCartCommand struct { //nolint:recvcheck //using for validation
	guestCartID kernel.UUID
	userID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewMergeGuestCartCommand creates a command to merge a guest cart.
func NewMergeGuestCartCommand(guestCartID, userID kernel.UUID) (MergeGuestCartCommand, error) {
	cmd := MergeGuestCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setGuestCartID(guestCartID),
		cmd.setUserID(userID),
	); err != nil {
		return MergeGuestCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MergeGuestCartCommand) Validate() error {
	return c.guard.Validate(ErrMergeGuestCartCommandIsNotConstructed)
}

// GuestCartID returns the guest cart being merged.
func (c MergeGuestCartCommand) GuestCartID() kernel.UUID {
	return c.guestCartID
}

// UserID returns the user receiving the cart contents.
func (c MergeGuestCartCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *MergeGuestCartCommand) setGuestCartID(guestCartID kernel.UUID) error {
	if err := guestCartID.Validate(); err != nil {
		return err
	}

	c.guestCartID = guestCartID
	return nil
}

func (c *MergeGuestCartCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
