package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCleanupExpiredCartsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC()
	cmd, err := commands.NewCleanupExpiredCartsCommand(cutoff)
	require.NoError(t, err)

	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("DeleteExpired", mock.Anything, cutoff).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCleanupExpiredCartsCommandHandler(factory)
	removed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewCleanupExpiredCartsCommand_RequiresCutoff(t *testing.T) {
	_, err := commands.NewCleanupExpiredCartsCommand(time.Time{})
	require.ErrorIs(t, err, commands.ErrCutoffIsRequired)
}
