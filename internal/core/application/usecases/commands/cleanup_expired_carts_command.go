package commands

import (
	"errors"
	"time"

	"booking/internal/pkg/guard"
)

var (
	ErrCleanupExpiredCartsCommandIsNotConstructed = errors.New(
		"CleanupExpiredCartsCommand must be created via NewCleanupExpiredCartsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// CleanupExpiredCartsCommand represents a request to remove every cart that
// expired before the cutoff moment. Issued periodically by the cleanup job.
type CleanupExpiredCartsCommand struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

// NewCleanupExpiredCartsCommand creates a command to purge expired carts.
func NewCleanupExpiredCartsCommand(before time.Time) (CleanupExpiredCartsCommand, error) {
	cmd := CleanupExpiredCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBefore(before); err != nil {
		return CleanupExpiredCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupExpiredCartsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupExpiredCartsCommandIsNotConstructed)
}

// Before returns the expiry cutoff.
func (c CleanupExpiredCartsCommand) Before() time.Time {
	return c.before
}

func (c *CleanupExpiredCartsCommand) setBefore(before time.Time) error {
	if before.IsZero() {
		return ErrCutoffIsRequired
	}

	c.before = before
	return nil
}
