package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutCommand(t *testing.T, cartID kernel.UUID, participantCount int) commands.CheckoutCommand {
	t.Helper()
	contact, err := kernel.NewContactInfo("Ayse", "Yilmaz", "ayse@example.com", "+905551112233")
	require.NoError(t, err)

	participants := make([]commands.ParticipantInput, 0, participantCount)
	for i := 0; i < participantCount; i++ {
		participants = append(participants, commands.ParticipantInput{
			FirstName: "Participant",
			LastName:  "Yilmaz",
		})
	}

	cmd, err := commands.NewCheckoutCommand(cartID, contact, participants, "credit_card", "", nil, nil, nil, "")
	require.NoError(t, err)
	return cmd
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd := newCheckoutCommand(t, cartID, 2)

	stored := storedCart(t, cartID, storedCartItem(t, 50.00, 2))

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, cartID).Return(stored, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Delete", mock.Anything, cartID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory, services.NewCheckoutService())
	newOrder, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, newOrder)
	assert.Equal(t, order.StatusPending, newOrder.Status())
	assert.InDelta(t, 100.00, newOrder.Total().Amount(), 0.001)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_BookingSlot(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()

	contact, err := kernel.NewContactInfo("Ayse", "Yilmaz", "ayse@example.com", "+905551112233")
	require.NoError(t, err)

	bookingDate := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCheckoutCommand(
		cartID, contact, nil, "credit_card", "", nil, nil, &bookingDate, "10:00",
	)
	require.NoError(t, err)

	stored := storedCart(t, cartID, storedCartItem(t, 75.00, 1))

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, cartID).Return(stored, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Delete", mock.Anything, cartID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory, services.NewCheckoutService())
	newOrder, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotEmpty(t, newOrder.Items())
	for _, item := range newOrder.Items() {
		require.NotNil(t, item.BookingDate())
		assert.True(t, item.BookingDate().Equal(bookingDate))
		assert.Equal(t, "10:00", item.BookingTime())
	}
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd := newCheckoutCommand(t, cartID, 0)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, cartID).Return(storedCart(t, cartID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory, services.NewCheckoutService())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrCartNotCheckoutable)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCheckoutCommandHandler(factory, services.NewCheckoutService())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
