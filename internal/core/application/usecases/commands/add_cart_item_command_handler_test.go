package commands_test

import (
	"errors"
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddItemCommand(t *testing.T, cartID kernel.UUID) commands.AddCartItemCommand {
	t.Helper()
	cmd, err := commands.NewAddCartItemCommand(
		cartID, kernel.NewUUID(), cart.ProductTypeTour,
		"Bosphorus Cruise", "bosphorus-cruise", "",
		usdPrice(t, 50.00), 2, "", "", nil, nil, nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd := newAddItemCommand(t, cartID)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cartID).Return(storedCart(t, cartID), nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_MeetingPoint(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()

	meetingPoint, err := kernel.NewLocation("Taksim Square", "Istanbul", "TR", 41.0370, 28.9850)
	require.NoError(t, err)

	cmd, err := commands.NewAddCartItemCommand(
		cartID, kernel.NewUUID(), cart.ProductTypeTour,
		"Bosphorus Cruise", "bosphorus-cruise", "",
		usdPrice(t, 50.00), 2, "", "", nil, nil, &meetingPoint,
	)
	require.NoError(t, err)

	var saved *cart.Cart
	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cartID).Return(storedCart(t, cartID), nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*cart.Cart")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*cart.Cart)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	items := saved.Items()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].MeetingPoint())
	require.Equal(t, "Taksim Square", items[0].MeetingPoint().Address())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddCartItemCommand{} // not constructed properly
	factory := new(MockCartUoWFactory)
	h := commands.NewAddCartItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddCartItemCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd := newAddItemCommand(t, cartID)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cartID).Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ExpiredCart(t *testing.T) {
	ctx := t.Context()
	cartID := kernel.NewUUID()
	cmd := newAddItemCommand(t, cartID)

	expired := expiredStoredCart(t, cartID)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cartID).Return(expired, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, cart.ErrCartIsExpired)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
