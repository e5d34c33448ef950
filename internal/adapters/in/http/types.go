package http

import (
	"time"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/order"
)

// Error is the JSON error envelope returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MoneyRequest carries a monetary amount with its currency code.
type MoneyRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// CreateCartRequest opens a new cart. Authenticated carts set userId,
// guest carts set sessionId; exactly one owner is required.
type CreateCartRequest struct {
	UserID    string `json:"userId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Currency  string `json:"currency"`
}

// AddCartItemRequest adds a product line to a cart.
type AddCartItemRequest struct {
	ProductID       string                `json:"productId"`
	ProductType     string                `json:"productType"`
	ProductTitle    string                `json:"productTitle"`
	ProductSlug     string                `json:"productSlug"`
	ProductImage    string                `json:"productImage,omitempty"`
	UnitPrice       MoneyRequest          `json:"unitPrice"`
	Quantity        int                   `json:"quantity"`
	VariantID       string                `json:"variantId,omitempty"`
	VariantName     string                `json:"variantName,omitempty"`
	SelectedOptions []cart.SelectedOption `json:"selectedOptions,omitempty"`
	Metadata        map[string]string     `json:"metadata,omitempty"`
	MeetingPoint    *LocationRequest      `json:"meetingPoint,omitempty"`
}

// LocationRequest carries a meeting or pickup point for a bookable item.
type LocationRequest struct {
	Address   string  `json:"address"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateItemQuantityRequest changes the quantity of a cart line.
// A quantity of zero removes the line.
type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AssignCartRequest attaches a guest cart to an authenticated user.
type AssignCartRequest struct {
	UserID string `json:"userId"`
}

// MergeCartRequest folds a guest cart into the given user's cart.
type MergeCartRequest struct {
	UserID string `json:"userId"`
}

// UpdateCartCurrencyRequest switches a cart to another currency.
type UpdateCartCurrencyRequest struct {
	Currency string `json:"currency"`
}

// ExtendCartRequest pushes the cart expiry further into the future.
type ExtendCartRequest struct {
	Hours int `json:"hours"`
}

// ContactInfoRequest carries the customer contact details for checkout.
type ContactInfoRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// ParticipantRequest carries one participant's details for checkout.
type ParticipantRequest struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Document    string     `json:"document,omitempty"`
}

// CheckoutRequest converts a cart into an order.
type CheckoutRequest struct {
	ContactInfo   ContactInfoRequest   `json:"contactInfo"`
	Participants  []ParticipantRequest `json:"participants,omitempty"`
	PaymentMethod string               `json:"paymentMethod"`
	Notes         string               `json:"notes,omitempty"`
	Tax           *MoneyRequest        `json:"tax,omitempty"`
	Discount      *MoneyRequest        `json:"discount,omitempty"`
	BookingDate   *time.Time           `json:"bookingDate,omitempty"`
	BookingTime   string               `json:"bookingTime,omitempty"`
}

// MarkOrderPaidRequest records a successful payment.
type MarkOrderPaidRequest struct {
	TransactionID string `json:"transactionId"`
}

// ReasonRequest carries the reason for a cancellation or payment failure.
type ReasonRequest struct {
	Reason string `json:"reason,omitempty"`
}

// RefundOrderRequest refunds an order. A nil amount means a full refund.
type RefundOrderRequest struct {
	Amount *MoneyRequest `json:"amount,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// CartSummaryResponse is the computed monetary breakdown of a cart.
type CartSummaryResponse struct {
	TotalItems   int     `json:"totalItems"`
	Subtotal     float64 `json:"subtotal"`
	OptionsTotal float64 `json:"optionsTotal"`
	TotalAmount  float64 `json:"totalAmount"`
	Currency     string  `json:"currency"`
}

// CartResponse is the full cart representation including derived totals.
type CartResponse struct {
	Cart    cart.Snapshot       `json:"cart"`
	Summary CartSummaryResponse `json:"summary"`
}

func newCartResponse(aggregate *cart.Cart) (CartResponse, error) {
	summary, err := aggregate.Summary()
	if err != nil {
		return CartResponse{}, err
	}

	return CartResponse{
		Cart: aggregate.ToSnapshot(),
		Summary: CartSummaryResponse{
			TotalItems:   summary.TotalItems,
			Subtotal:     summary.Subtotal.Amount(),
			OptionsTotal: summary.OptionsTotal.Amount(),
			TotalAmount:  summary.TotalAmount.Amount(),
			Currency:     string(summary.Currency.Code()),
		},
	}, nil
}

func newOrderResponse(aggregate *order.Order) order.Snapshot {
	return aggregate.ToSnapshot()
}
