package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewAddCartItemCommand(
			kernel.NewUUID(), kernel.NewUUID(), cart.ProductTypeTour,
			"Bosphorus Cruise", "bosphorus-cruise", "",
			usdPrice(t, 50.00), 2, "", "", nil, nil, nil,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 2, cmd.Quantity())
		assert.Equal(t, cart.ProductTypeTour, cmd.ProductType())
	})

	t.Run("should carry a meeting point", func(t *testing.T) {
		meetingPoint, err := kernel.NewLocation("Taksim Square", "Istanbul", "TR", 41.0370, 28.9850)
		require.NoError(t, err)

		cmd, err := commands.NewAddCartItemCommand(
			kernel.NewUUID(), kernel.NewUUID(), cart.ProductTypeTour,
			"Bosphorus Cruise", "bosphorus-cruise", "",
			usdPrice(t, 50.00), 2, "", "", nil, nil, &meetingPoint,
		)

		require.NoError(t, err)
		require.NotNil(t, cmd.MeetingPoint())
		assert.Equal(t, "Taksim Square", cmd.MeetingPoint().Address())
	})

	t.Run("should reject unconstructed meeting point", func(t *testing.T) {
		var zeroPoint kernel.Location

		_, err := commands.NewAddCartItemCommand(
			kernel.NewUUID(), kernel.NewUUID(), cart.ProductTypeTour,
			"Bosphorus Cruise", "bosphorus-cruise", "",
			usdPrice(t, 50.00), 2, "", "", nil, nil, &zeroPoint,
		)

		require.Error(t, err)
	})

	t.Run("should fail with invalid cart id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewAddCartItemCommand(
			invalidID, kernel.NewUUID(), cart.ProductTypeTour,
			"Bosphorus Cruise", "bosphorus-cruise", "",
			usdPrice(t, 50.00), 2, "", "", nil, nil, nil,
		)

		require.Error(t, err)
	})

	t.Run("should fail with zero value price", func(t *testing.T) {
		var invalidPrice kernel.Price

		_, err := commands.NewAddCartItemCommand(
			kernel.NewUUID(), kernel.NewUUID(), cart.ProductTypeTour,
			"Bosphorus Cruise", "bosphorus-cruise", "",
			invalidPrice, 2, "", "", nil, nil, nil,
		)

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		cmd := commands.AddCartItemCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddCartItemCommandIsNotConstructed)
	})
}
