package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrCreateCartCommandIsNotConstructed = errors.New(
		"CreateCartCommand must be created via NewCreateCartCommand constructor",
	)
	ErrCartOwnerIsRequired = errors.New("either a user id or a session id is required")
)

// CreateCartCommand represents a request to open a new cart, either for an
// authenticated user or for a guest session.
type CreateCartCommand struct { //nolint:recvcheck //using for validation
	cartID    kernel.UUID
	userID    *kernel.UUID
	sessionID string
	currency  kernel.Currency

	guard guard.ConstructorGuard
}

// NewCreateCartCommand creates a command to open a cart.
// Guest carts pass a nil userID and a non-empty sessionID.
func NewCreateCartCommand(
	cartID kernel.UUID,
	userID *kernel.UUID,
	sessionID string,
	currency kernel.Currency,
) (CreateCartCommand, error) {
	cmd := CreateCartCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setOwner(userID, sessionID),
		cmd.setCurrency(currency),
	); err != nil {
		return CreateCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCartCommand) Validate() error {
	return c.guard.Validate(ErrCreateCartCommandIsNotConstructed)
}

// CartID returns the identifier for the new cart.
func (c CreateCartCommand) CartID() kernel.UUID {
	return c.cartID
}

// UserID returns the owning user, or nil for a guest cart.
func (c CreateCartCommand) UserID() *kernel.UUID {
	return c.userID
}

// SessionID returns the guest session identifier, may be empty for user carts.
func (c CreateCartCommand) SessionID() string {
	return c.sessionID
}

// Currency returns the cart's currency.
func (c CreateCartCommand) Currency() kernel.Currency {
	return c.currency
}

func (c *CreateCartCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *CreateCartCommand) setOwner(userID *kernel.UUID, sessionID string) error {
	if userID == nil {
		if sessionID == "" {
			return ErrCartOwnerIsRequired
		}
		return nil
	}

	if err := userID.Validate(); err != nil {
		return err
	}

	uid := *userID
	c.userID = &uid
	return nil
}

func (c *CreateCartCommand) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	c.currency = currency
	return nil
}
