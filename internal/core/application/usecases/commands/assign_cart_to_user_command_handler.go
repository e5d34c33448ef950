package commands

import (
	"context"
)

// AssignCartToUserCommandHandler attaches guest carts to users after login.
type AssignCartToUserCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAssignCartToUserCommandHandler creates a handler for cart ownership transfer.
func NewAssignCartToUserCommandHandler(uowFactory CartUoWFactory) AssignCartToUserCommandHandler {
	return AssignCartToUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h *AssignCartToUserCommandHandler) Handle(ctx context.Context, cmd AssignCartToUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	aggregate, err = aggregate.AssignToUser(cmd.UserID())
	if err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
