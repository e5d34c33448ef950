package commands

import (
	"context"
)

// UpdateItemQuantityCommandHandler handles quantity changes on cart lines.
type UpdateItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateItemQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateItemQuantityCommandHandler(uowFactory CartUoWFactory) UpdateItemQuantityCommandHandler {
	return UpdateItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update command.
// Fails with cart.ErrItemNotFound if the line does not exist.
func (h *UpdateItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateItemQuantityCommand) error {
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

	aggregate, err = aggregate.UpdateItemQuantity(cmd.ItemID(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
