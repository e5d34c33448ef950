package commands

import (
	"errors"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand represents a request to add a product to a cart.
// If the cart already holds the same product+variant, the quantities merge
// into a single line instead of creating a duplicate row.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(cartID, productID, cart.ProductTypeTour,
//	    "Bosphorus Cruise", "bosphorus-cruise", "", price, 2, "", "", nil, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	cartID          kernel.UUID
	productID       kernel.UUID
	productType     cart.ProductType
	productTitle    string
	productSlug     string
	productImage    string
	unitPrice       kernel.Price
	quantity        int
	variantID       string
	variantName     string
	selectedOptions []cart.SelectedOption
	metadata        map[string]string
	meetingPoint    *kernel.Location

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a product to a cart.
// The full item validation happens in the domain model; the command only
// checks identifiers, the price value object and the optional meeting point.
func NewAddCartItemCommand(
	cartID kernel.UUID,
	productID kernel.UUID,
	productType cart.ProductType,
	productTitle string,
	productSlug string,
	productImage string,
	unitPrice kernel.Price,
	quantity int,
	variantID string,
	variantName string,
	selectedOptions []cart.SelectedOption,
	metadata map[string]string,
	meetingPoint *kernel.Location,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		productType:     productType,
		productTitle:    productTitle,
		productSlug:     productSlug,
		productImage:    productImage,
		quantity:        quantity,
		variantID:       variantID,
		variantName:     variantName,
		selectedOptions: selectedOptions,
		metadata:        metadata,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCartID(cartID),
		cmd.setProductID(productID),
		cmd.setUnitPrice(unitPrice),
		cmd.setMeetingPoint(meetingPoint),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CartID returns the target cart's identifier.
func (c AddCartItemCommand) CartID() kernel.UUID {
	return c.cartID
}

// ProductID returns the product being added.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// ProductType returns the kind of bookable product.
func (c AddCartItemCommand) ProductType() cart.ProductType {
	return c.productType
}

// ProductTitle returns the display title of the product.
func (c AddCartItemCommand) ProductTitle() string {
	return c.productTitle
}

// ProductSlug returns the URL slug of the product.
func (c AddCartItemCommand) ProductSlug() string {
	return c.productSlug
}

// ProductImage returns the product image URL, may be empty.
func (c AddCartItemCommand) ProductImage() string {
	return c.productImage
}

// UnitPrice returns the price per unit.
func (c AddCartItemCommand) UnitPrice() kernel.Price {
	return c.unitPrice
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

// VariantID returns the product variant identifier, may be empty.
func (c AddCartItemCommand) VariantID() string {
	return c.variantID
}

// VariantName returns the variant display name, may be empty.
func (c AddCartItemCommand) VariantName() string {
	return c.variantName
}

// SelectedOptions returns the chosen product options.
func (c AddCartItemCommand) SelectedOptions() []cart.SelectedOption {
	return c.selectedOptions
}

// Metadata returns free-form item metadata.
func (c AddCartItemCommand) Metadata() map[string]string {
	return c.metadata
}

// MeetingPoint returns where the booking starts, nil when not set.
func (c AddCartItemCommand) MeetingPoint() *kernel.Location {
	return c.meetingPoint
}

func (c *AddCartItemCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *AddCartItemCommand) setMeetingPoint(meetingPoint *kernel.Location) error {
	if meetingPoint == nil {
		return nil
	}
	if err := meetingPoint.Validate(); err != nil {
		return err
	}

	c.meetingPoint = meetingPoint
	return nil
}
