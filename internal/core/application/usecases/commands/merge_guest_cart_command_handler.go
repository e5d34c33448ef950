package commands

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/cart"
	"booking/internal/pkg/errs"
)

// ErrCartIsNotGuest is returned when merging a cart that already belongs to
// a user.
var ErrCartIsNotGuest = errors.New("cart is not a guest cart")

// MergeGuestCartCommandHandler folds guest carts into user carts on login.
// The merge and the guest cart removal happen inside one transaction.
type MergeGuestCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewMergeGuestCartCommandHandler creates a handler for guest cart merges.
func NewMergeGuestCartCommandHandler(uowFactory CartUoWFactory) MergeGuestCartCommandHandler {
	return MergeGuestCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the merge command.
//
// When the user has no cart, the guest cart is reassigned to them. When the
// user already has a cart, each guest item is added to it, merging
// quantities per product+variant, and the guest cart is deleted.
func (h *MergeGuestCartCommandHandler) Handle(ctx context.Context, cmd MergeGuestCartCommand) error {
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
	guestCart, err := cartRepo.Get(ctx, cmd.GuestCartID())
	if err != nil {
		return err
	}

	if !guestCart.IsGuest() {
		return ErrCartIsNotGuest
	}

	userCart, err := cartRepo.GetByUser(ctx, cmd.UserID())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}

		guestCart, err = guestCart.AssignToUser(cmd.UserID())
		if err != nil {
			return err
		}

		if err = cartRepo.Update(ctx, guestCart); err != nil {
			return err
		}

		return uow.Commit(ctx)
	}

	userCart, err = mergeItems(userCart, guestCart.Items())
	if err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	if err = cartRepo.Delete(ctx, guestCart.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func mergeItems(target *cart.Cart, items []cart.Item) (*cart.Cart, error) {
	merged := target
	for _, item := range items {
		next, err := merged.AddItem(item)
		if err != nil {
			return nil, err
		}
		merged = next
	}

	return merged, nil
}
