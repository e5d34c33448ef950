package commands

import (
	"context"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
)

// AddCartItemCommandHandler handles the business logic for adding a product
// to a cart. The domain model performs the merge by product+variant.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart item addition.
// Requires a CartUoWFactory for transactional persistence.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add item command.
// Loads the cart, derives a new aggregate with the item added and persists it.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := cart.NewItem(
		kernel.NewUUID(),
		cmd.ProductID(),
		cmd.ProductType(),
		cmd.ProductTitle(),
		cmd.ProductSlug(),
		cmd.ProductImage(),
		cmd.UnitPrice(),
		cmd.Quantity(),
		cmd.VariantID(),
		cmd.VariantName(),
		cmd.SelectedOptions(),
		cmd.Metadata(),
	)
	if err != nil {
		return err
	}

	if meetingPoint := cmd.MeetingPoint(); meetingPoint != nil {
		item, err = item.WithMeetingPoint(*meetingPoint)
		if err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	aggregate, err = aggregate.AddItem(item)
	if err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
