package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// ParticipantInput carries the customer-entered data for one participant.
// Identity is assigned by the handler.
type ParticipantInput struct {
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Document    string
}

// CheckoutCommand represents a request to convert a cart into an order.
// On success the cart is removed and a pending order takes its place, all in
// one transaction.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(cartID, contact, participants, "credit_card", "", nil, nil, nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, checkoutService)
//	newOrder, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	cartID        kernel.UUID
	contactInfo   kernel.ContactInfo
	participants  []ParticipantInput
	paymentMethod string
	notes         string
	tax           *kernel.Price
	discount      *kernel.Price
	bookingDate   *time.Time
	bookingTime   string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out a cart.
// Tax and discount are optional; nil means zero. BookingDate and bookingTime
// are optional and apply to every item of the created order.
func NewCheckoutCommand(
	cartID kernel.UUID,
	contactInfo kernel.ContactInfo,
	participants []ParticipantInput,
	paymentMethod string,
	notes string,
	tax *kernel.Price,
	discount *kernel.Price,
	bookingDate *time.Time,
	bookingTime string,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		participants: participants,
		notes:        notes,
		bookingDate:  bookingDate,
		bookingTime:  bookingTime,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setContactInfo(contactInfo),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setTax(tax),
		cmd.setDiscount(discount),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CartID returns the cart being checked out.
func (c CheckoutCommand) CartID() kernel.UUID {
	return c.cartID
}

// ContactInfo returns the customer contact details.
func (c CheckoutCommand) ContactInfo() kernel.ContactInfo {
	return c.contactInfo
}

// Participants returns the customer-entered participant data.
func (c CheckoutCommand) Participants() []ParticipantInput {
	return c.participants
}

// PaymentMethod returns the chosen payment method label.
func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Notes returns free-form customer notes.
func (c CheckoutCommand) Notes() string {
	return c.notes
}

// Tax returns the tax amount, or nil for zero.
func (c CheckoutCommand) Tax() *kernel.Price {
	return c.tax
}

// Discount returns the discount amount, or nil for zero.
func (c CheckoutCommand) Discount() *kernel.Price {
	return c.discount
}

// BookingDate returns the requested booking date, or nil when unscheduled.
func (c CheckoutCommand) BookingDate() *time.Time {
	return c.bookingDate
}

// BookingTime returns the requested time slot label, such as "10:00".
func (c CheckoutCommand) BookingTime() string {
	return c.bookingTime
}

func (c *CheckoutCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *CheckoutCommand) setContactInfo(contactInfo kernel.ContactInfo) error {
	if err := contactInfo.Validate(); err != nil {
		return err
	}

	c.contactInfo = contactInfo
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CheckoutCommand) setTax(tax *kernel.Price) error {
	if tax == nil {
		return nil
	}
	if err := tax.Validate(); err != nil {
		return err
	}

	c.tax = tax
	return nil
}

func (c *CheckoutCommand) setDiscount(discount *kernel.Price) error {
	if discount == nil {
		return nil
	}
	if err := discount.Validate(); err != nil {
		return err
	}

	c.discount = discount
	return nil
}
