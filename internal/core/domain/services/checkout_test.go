package services_test

import (
	"testing"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usdCurrency(t *testing.T) kernel.Currency {
	t.Helper()
	currency, err := kernel.CurrencyFromCode(kernel.USD)
	require.NoError(t, err)
	return currency
}

func usdPrice(t *testing.T, amount float64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount, usdCurrency(t))
	require.NoError(t, err)
	return price
}

func newCartItem(t *testing.T, productType cart.ProductType, amount float64, quantity int) cart.Item {
	t.Helper()
	item, err := cart.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), productType,
		"Cappadocia Balloon Ride", "cappadocia-balloon-ride", "",
		usdPrice(t, amount), quantity, "", "", nil, nil,
	)
	require.NoError(t, err)
	return item
}

func testRequest(t *testing.T, participantCount int) services.CheckoutRequest {
	t.Helper()
	contact, err := kernel.NewContactInfo("Ayse", "Yilmaz", "ayse@example.com", "+905551112233")
	require.NoError(t, err)

	names := []string{"Ayse", "Mehmet", "Elif", "Can", "Zeynep"}
	participants := make([]order.Participant, 0, participantCount)
	for i := 0; i < participantCount; i++ {
		p, err := order.NewParticipant(kernel.NewUUID(), names[i%len(names)], "Yilmaz", nil, "")
		require.NoError(t, err)
		participants = append(participants, p)
	}

	return services.CheckoutRequest{
		ContactInfo:   contact,
		Participants:  participants,
		PaymentMethod: "credit_card",
	}
}

func TestCheckoutService_CreateOrderFromCart(t *testing.T) {
	checkout := services.NewCheckoutService()

	t.Run("should convert a valid cart into a pending order", func(t *testing.T) {
		userID := kernel.NewUUID()
		c, err := cart.NewCart(kernel.NewUUID(), &userID, "", usdCurrency(t))
		require.NoError(t, err)
		c, err = c.AddItem(newCartItem(t, cart.ProductTypeTour, 120.00, 2))
		require.NoError(t, err)

		o, err := checkout.CreateOrderFromCart(c, testRequest(t, 2))

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.InDelta(t, 240.00, o.Total().Amount(), 0.001)
		assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{6}$`, o.OrderNumber())
		require.NotNil(t, o.UserID())
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Len(t, o.Items(), 1)
		assert.Len(t, o.WorkflowSteps(), 1)
	})

	t.Run("should apply tax and discount", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID(), nil, "s-1", usdCurrency(t))
		require.NoError(t, err)
		c, err = c.AddItem(newCartItem(t, cart.ProductTypeTour, 100.00, 1))
		require.NoError(t, err)

		tax := usdPrice(t, 18.00)
		discount := usdPrice(t, 10.00)
		request := testRequest(t, 1)
		request.Tax = &tax
		request.Discount = &discount

		o, err := checkout.CreateOrderFromCart(c, request)

		require.NoError(t, err)
		assert.InDelta(t, 100.00, o.Subtotal().Amount(), 0.001)
		assert.InDelta(t, 108.00, o.Total().Amount(), 0.001)
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID(), nil, "s-2", usdCurrency(t))
		require.NoError(t, err)

		_, err = checkout.CreateOrderFromCart(c, testRequest(t, 0))

		require.ErrorIs(t, err, services.ErrCartNotCheckoutable)
		assert.Contains(t, err.Error(), "Cart is empty")
	})

	t.Run("should not validate participant count at creation", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID(), nil, "s-3", usdCurrency(t))
		require.NoError(t, err)
		c, err = c.AddItem(newCartItem(t, cart.ProductTypeTour, 50.00, 2))
		require.NoError(t, err)

		o, err := checkout.CreateOrderFromCart(c, testRequest(t, 1))

		require.NoError(t, err)
		result := o.ValidateForProcessing()
		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Participant count 1 does not match total item quantity 2")
	})
}

// Full journey: cart accumulation, statistics, checkout, payment and
// fulfilment.
func TestCheckoutService_EndToEnd(t *testing.T) {
	checkout := services.NewCheckoutService()

	c, err := cart.NewCart(kernel.NewUUID(), nil, "session-e2e", usdCurrency(t))
	require.NoError(t, err)

	c, err = c.AddItem(newCartItem(t, cart.ProductTypeTour, 50.00, 2))
	require.NoError(t, err)
	c, err = c.AddItem(newCartItem(t, cart.ProductTypeEvent, 75.00, 1))
	require.NoError(t, err)

	stats, err := c.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ItemCount)
	assert.Equal(t, 2, stats.UniqueProductCount)
	assert.InDelta(t, 175.00, stats.TotalValue.Amount(), 0.001)

	o, err := checkout.CreateOrderFromCart(c, testRequest(t, 3))
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, o.Status())
	assert.InDelta(t, 175.00, o.Total().Amount(), 0.001)

	o, err = o.Confirm()
	require.NoError(t, err)
	o, err = o.MarkAsPaid("txn-1")
	require.NoError(t, err)
	o, err = o.StartProcessing()
	require.NoError(t, err)
	o, err = o.Complete()
	require.NoError(t, err)

	assert.Equal(t, order.StatusCompleted, o.Status())
	assert.Len(t, o.WorkflowSteps(), 5)
}
