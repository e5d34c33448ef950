package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
)

// ErrCartNotCheckoutable is returned when a cart fails checkout validation.
// The wrapping error lists the individual validation failures.
var ErrCartNotCheckoutable = errors.New("cart cannot be converted to an order")

// CheckoutService is a domain service that converts a validated cart into a
// new order. It is the only place an order is born.
//
// Key responsibilities:
//   - Running cart checkout validation before conversion
//   - Freezing cart lines into immutable order items
//   - Computing the monetary breakdown (subtotal, tax, discount, total)
//   - Generating a human-readable order number
//
// Business rules:
//   - Only a non-empty, non-expired cart with passing checkout validation
//     can become an order
//   - Item prices are frozen at checkout; later catalog changes never
//     affect the order
//   - Participant count is NOT checked here; that check is deferred to
//     Order.ValidateForProcessing
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// CheckoutRequest carries the customer-supplied data needed to turn a cart
// into an order. Tax and Discount are optional; nil means zero in the cart's
// currency.
type CheckoutRequest struct {
	ContactInfo   kernel.ContactInfo
	Participants  []order.Participant
	PaymentMethod string
	Notes         string
	Tax           *kernel.Price
	Discount      *kernel.Price
	BookingDate   *time.Time
	BookingTime   string
}

// CreateOrderFromCart converts the cart into a pending order.
//
// Fails with ErrCartNotCheckoutable when the cart does not pass checkout
// validation; the error message lists every blocking problem.
func (s CheckoutService) CreateOrderFromCart(c *cart.Cart, request CheckoutRequest) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if result := c.ValidateForCheckout(); !result.IsValid {
		return nil, fmt.Errorf("%w: %s", ErrCartNotCheckoutable, strings.Join(result.Errors, "; "))
	}

	items := make([]order.Item, 0, len(c.Items()))
	for _, cartItem := range c.Items() {
		item, err := order.NewItemFromCart(cartItem, request.BookingDate, request.BookingTime)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	summary, err := c.Summary()
	if err != nil {
		return nil, err
	}

	zero, err := kernel.NewPrice(0, c.Currency())
	if err != nil {
		return nil, err
	}

	tax := zero
	if request.Tax != nil {
		tax = *request.Tax
	}
	discount := zero
	if request.Discount != nil {
		discount = *request.Discount
	}

	total, err := summary.TotalAmount.Add(tax)
	if err != nil {
		return nil, err
	}
	total, err = total.Subtract(discount)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		kernel.NewUUID(),
		s.generateOrderNumber(),
		c.UserID(),
		items,
		request.Participants,
		request.ContactInfo,
		summary.TotalAmount,
		tax,
		discount,
		total,
		request.PaymentMethod,
		request.Notes,
	)
}

// generateOrderNumber builds a human-readable, practically unique order
// number, e.g. "ORD-20260830-1A2B3C". Global uniqueness is enforced by the
// storage layer's unique constraint, not here.
func (s CheckoutService) generateOrderNumber() string {
	suffix := strings.ToUpper(kernel.NewUUID().String()[:6])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
