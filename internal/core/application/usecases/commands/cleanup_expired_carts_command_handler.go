package commands

import (
	"context"
)

// CleanupExpiredCartsCommandHandler purges carts past their expiry.
type CleanupExpiredCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewCleanupExpiredCartsCommandHandler creates a handler for cart cleanup.
func NewCleanupExpiredCartsCommandHandler(uowFactory CartUoWFactory) CleanupExpiredCartsCommandHandler {
	return CleanupExpiredCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup command and returns how many carts were removed.
func (h *CleanupExpiredCartsCommandHandler) Handle(ctx context.Context, cmd CleanupExpiredCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CartRepository().DeleteExpired(ctx, cmd.Before())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
