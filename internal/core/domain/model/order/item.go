package order

import (
	"time"

	"booking/internal/core/domain/model/cart"
	"booking/internal/pkg/errs"
)

// Item is an order line. It wraps an immutable snapshot of the cart line it
// was created from, plus the booking slot chosen at checkout. Once the order
// exists, catalog price changes never affect it.
type Item struct {
	cart.Item

	bookingDate *time.Time
	bookingTime string
}

// NewItemFromCart freezes a cart line into an order line.
// bookingDate and bookingTime are optional; not every product type is
// scheduled (transfers carry a slot, events usually do not).
func NewItemFromCart(cartItem cart.Item, bookingDate *time.Time, bookingTime string) (Item, error) {
	if err := cartItem.Validate(); err != nil {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("cart item", err)
	}

	item := Item{Item: cartItem, bookingTime: bookingTime}
	if bookingDate != nil {
		d := *bookingDate
		item.bookingDate = &d
	}

	return item, nil
}

// BookingDate returns the scheduled date, or nil for unscheduled items.
func (i Item) BookingDate() *time.Time {
	if i.bookingDate == nil {
		return nil
	}
	d := *i.bookingDate
	return &d
}

// BookingTime returns the scheduled time-of-day label, e.g. "14:30".
func (i Item) BookingTime() string {
	return i.bookingTime
}
