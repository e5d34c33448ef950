package cart

import (
	"errors"
	"fmt"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ProductType classifies what kind of bookable product a cart item refers to.
// The set is closed: tours, events and transfers.
type ProductType string

const (
	// ProductTypeTour is a guided tour booking.
	ProductTypeTour ProductType = "tour"
	// ProductTypeEvent is an event ticket booking.
	ProductTypeEvent ProductType = "event"
	// ProductTypeTransfer is an airport or city transfer booking.
	ProductTypeTransfer ProductType = "transfer"
)

// getValidProductTypes returns the set of valid product types.
func getValidProductTypes() map[ProductType]struct{} {
	return map[ProductType]struct{}{
		ProductTypeTour:     {},
		ProductTypeEvent:    {},
		ProductTypeTransfer: {},
	}
}

// Validate checks if the ProductType is part of the closed set.
func (p ProductType) Validate() error {
	if _, ok := getValidProductTypes()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"product type",
			fmt.Errorf("%q is not a valid product type", string(p)),
		)
	}
	return nil
}

// String returns the product type as a string.
func (p ProductType) String() string {
	return string(p)
}

// SelectedOption is a product option chosen for a cart item, e.g. a meal
// preference or an extra seat. PriceModifier is the per-unit surcharge the
// option adds to the item's price; zero for free options.
type SelectedOption struct {
	OptionID      string  `json:"optionId"`
	Value         string  `json:"value"`
	PriceModifier float64 `json:"priceModifier,omitempty"`
}

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"cart item must be created via NewItem constructor")

// Item is a line item inside a cart: a bookable product with a unit price,
// a positive quantity, an optional variant and selected options.
//
// Item is immutable; quantity changes go through the Cart aggregate, which
// derives a new item via withQuantity.
type Item struct { //nolint:recvcheck //using for validation
	id              kernel.UUID
	productID       kernel.UUID
	productType     ProductType
	productTitle    string
	productSlug     string
	productImage    string
	unitPrice       kernel.Price
	quantity        int
	variantID       string
	variantName     string
	selectedOptions []SelectedOption
	metadata        map[string]string
	meetingPoint    *kernel.Location
	guard           guard.ConstructorGuard
}

// NewItem creates a cart line item with validation.
// The id and productID must be valid UUIDs, the product type must be part of
// the closed set, the title must be non-empty, the unit price must be a
// constructed Price and the quantity must be positive.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	productType ProductType,
	productTitle string,
	productSlug string,
	productImage string,
	unitPrice kernel.Price,
	quantity int,
	variantID string,
	variantName string,
	selectedOptions []SelectedOption,
	metadata map[string]string,
) (Item, error) {
	item := Item{
		productSlug:     productSlug,
		productImage:    productImage,
		variantID:       variantID,
		variantName:     variantName,
		selectedOptions: append([]SelectedOption(nil), selectedOptions...),
		metadata:        copyMetadata(metadata),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setProductType(productType),
		item.setProductTitle(productTitle),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the referenced product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductType returns the kind of product this item books.
func (i Item) ProductType() ProductType {
	return i.productType
}

// ProductTitle returns the product's display title.
func (i Item) ProductTitle() string {
	return i.productTitle
}

// ProductSlug returns the product's URL slug.
func (i Item) ProductSlug() string {
	return i.productSlug
}

// ProductImage returns the product's image reference, empty if none.
func (i Item) ProductImage() string {
	return i.productImage
}

// UnitPrice returns the price of a single unit without options.
func (i Item) UnitPrice() kernel.Price {
	return i.unitPrice
}

// Quantity returns the number of units, always positive.
func (i Item) Quantity() int {
	return i.quantity
}

// VariantID returns the selected variant's identifier, empty if none.
func (i Item) VariantID() string {
	return i.variantID
}

// VariantName returns the selected variant's display name, empty if none.
func (i Item) VariantName() string {
	return i.variantName
}

// SelectedOptions returns a copy of the chosen product options.
func (i Item) SelectedOptions() []SelectedOption {
	return append([]SelectedOption(nil), i.selectedOptions...)
}

// Metadata returns a copy of the item's free-form metadata, nil if none.
func (i Item) Metadata() map[string]string {
	return copyMetadata(i.metadata)
}

// MeetingPoint returns where the booking starts, nil when the product has no
// fixed starting point. Tours use it for the guide meeting spot and
// transfers for the pickup address.
func (i Item) MeetingPoint() *kernel.Location {
	if i.meetingPoint == nil {
		return nil
	}
	point := *i.meetingPoint
	return &point
}

// WithMeetingPoint derives a copy of the item carrying the given meeting
// point. The location must be a constructed kernel.Location.
func (i Item) WithMeetingPoint(point kernel.Location) (Item, error) {
	if err := i.Validate(); err != nil {
		return Item{}, err
	}
	if err := point.Validate(); err != nil {
		return Item{}, err
	}

	item := i
	item.meetingPoint = &point
	return item, nil
}

// copyMetadata clones a metadata map, preserving nil.
func copyMetadata(metadata map[string]string) map[string]string {
	if metadata == nil {
		return nil
	}
	clone := make(map[string]string, len(metadata))
	for k, v := range metadata {
		clone[k] = v
	}
	return clone
}

// OptionsPricePerUnit returns the per-unit surcharge of all selected options.
func (i Item) OptionsPricePerUnit() (kernel.Price, error) {
	if err := i.Validate(); err != nil {
		return kernel.Price{}, err
	}

	total := 0.0
	for _, option := range i.selectedOptions {
		total += option.PriceModifier
	}

	return kernel.NewPrice(total, i.unitPrice.Currency())
}

// TotalPrice returns (unit price + options per unit) x quantity.
// It is always derived, never stored.
func (i Item) TotalPrice() (kernel.Price, error) {
	options, err := i.OptionsPricePerUnit()
	if err != nil {
		return kernel.Price{}, err
	}

	perUnit, err := i.unitPrice.Add(options)
	if err != nil {
		return kernel.Price{}, err
	}

	return perUnit.MultiplyBy(float64(i.quantity))
}

// MatchesProduct reports whether the item refers to the same product and
// variant. This composite key drives cart de-duplication.
func (i Item) MatchesProduct(productID kernel.UUID, variantID string) bool {
	return i.productID.IsEqual(productID) && i.variantID == variantID
}

// withQuantity derives a copy of the item with a different quantity.
func (i Item) withQuantity(quantity int) (Item, error) {
	item := i
	if err := item.setQuantity(quantity); err != nil {
		return Item{}, err
	}
	return item, nil
}

// withUnitPrice derives a copy of the item with a converted unit price.
func (i Item) withUnitPrice(unitPrice kernel.Price) (Item, error) {
	item := i
	if err := item.setUnitPrice(unitPrice); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product id", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductType(productType ProductType) error {
	if err := productType.Validate(); err != nil {
		return err
	}
	i.productType = productType
	return nil
}

func (i *Item) setProductTitle(productTitle string) error {
	if productTitle == "" {
		return errs.NewValueIsRequiredError("product title")
	}
	i.productTitle = productTitle
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
