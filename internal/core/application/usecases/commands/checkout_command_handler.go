package commands

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/domain/services"
)

// CheckoutCommandHandler converts a cart into a new pending order.
// The order creation and cart removal happen inside one transaction, so a
// failed checkout never leaves a half-converted cart behind.
type CheckoutCommandHandler struct {
	uowFactory      UoWFactory
	checkoutService services.CheckoutService
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a cross-aggregate UoWFactory and the checkout domain service.
func NewCheckoutCommandHandler(uowFactory UoWFactory, checkoutService services.CheckoutService) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:      uowFactory,
		checkoutService: checkoutService,
	}
}

// Handle processes the checkout command and returns the created order.
// Fails with services.ErrCartNotCheckoutable when the cart does not pass
// checkout validation.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	participants := make([]order.Participant, 0, len(cmd.Participants()))
	for _, input := range cmd.Participants() {
		participant, err := order.NewParticipant(
			kernel.NewUUID(),
			input.FirstName,
			input.LastName,
			input.DateOfBirth,
			input.Document,
		)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return nil, err
	}

	newOrder, err := h.checkoutService.CreateOrderFromCart(aggregate, services.CheckoutRequest{
		ContactInfo:   cmd.ContactInfo(),
		Participants:  participants,
		PaymentMethod: cmd.PaymentMethod(),
		Notes:         cmd.Notes(),
		Tax:           cmd.Tax(),
		Discount:      cmd.Discount(),
		BookingDate:   cmd.BookingDate(),
		BookingTime:   cmd.BookingTime(),
	})
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = cartRepo.Delete(ctx, aggregate.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
