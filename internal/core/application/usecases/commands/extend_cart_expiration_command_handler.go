package commands

import (
	"context"
)

// ExtendCartExpirationCommandHandler pushes cart expiry forward.
type ExtendCartExpirationCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewExtendCartExpirationCommandHandler creates a handler for expiry extension.
func NewExtendCartExpirationCommandHandler(uowFactory CartUoWFactory) ExtendCartExpirationCommandHandler {
	return ExtendCartExpirationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the extension command.
func (h *ExtendCartExpirationCommandHandler) Handle(ctx context.Context, cmd ExtendCartExpirationCommand) error {
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

	aggregate, err = aggregate.ExtendExpiration(cmd.Hours())
	if err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
