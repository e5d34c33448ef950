package commands

import (
	"context"

	"booking/internal/core/domain/model/cart"
)

// CreateCartCommandHandler opens new carts.
type CreateCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewCreateCartCommandHandler creates a handler for cart creation.
func NewCreateCartCommandHandler(uowFactory CartUoWFactory) CreateCartCommandHandler {
	return CreateCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart creation command.
func (h *CreateCartCommandHandler) Handle(ctx context.Context, cmd CreateCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := cart.NewCart(cmd.CartID(), cmd.UserID(), cmd.SessionID(), cmd.Currency())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CartRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
