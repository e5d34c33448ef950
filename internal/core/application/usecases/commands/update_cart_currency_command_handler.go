package commands

import (
	"context"
)

// UpdateCartCurrencyCommandHandler switches carts to another currency.
type UpdateCartCurrencyCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartCurrencyCommandHandler creates a handler for currency changes.
func NewUpdateCartCurrencyCommandHandler(uowFactory CartUoWFactory) UpdateCartCurrencyCommandHandler {
	return UpdateCartCurrencyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the currency change command.
func (h *UpdateCartCurrencyCommandHandler) Handle(ctx context.Context, cmd UpdateCartCurrencyCommand) error {
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

	aggregate, err = aggregate.UpdateCurrency(cmd.Currency())
	if err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
