package cart

import (
	"time"

	"booking/internal/core/domain/model/kernel"
)

// ItemSnapshot is the stable wire/persistence form of a cart line item.
// Field names are part of the external contract and must not change.
type ItemSnapshot struct {
	ID              string                   `json:"id"`
	ProductID       string                   `json:"productId"`
	ProductType     string                   `json:"productType"`
	ProductTitle    string                   `json:"productTitle"`
	ProductSlug     string                   `json:"productSlug"`
	ProductImage    string                   `json:"productImage,omitempty"`
	UnitPrice       kernel.PriceSnapshot     `json:"unitPrice"`
	Quantity        int                      `json:"quantity"`
	VariantID       string                   `json:"variantId,omitempty"`
	VariantName     string                   `json:"variantName,omitempty"`
	SelectedOptions []SelectedOption         `json:"selectedOptions"`
	Metadata        map[string]string        `json:"metadata,omitempty"`
	MeetingPoint    *kernel.LocationSnapshot `json:"meetingPoint,omitempty"`
}

// Snapshot is the stable wire/persistence form of a cart aggregate.
type Snapshot struct {
	ID        string         `json:"id"`
	UserID    *string        `json:"userId"`
	SessionID string         `json:"sessionId,omitempty"`
	Items     []ItemSnapshot `json:"items"`
	Currency  string         `json:"currency"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// ToSnapshot converts the item to its wire form.
func (i Item) ToSnapshot() ItemSnapshot {
	options := i.SelectedOptions()
	if options == nil {
		options = []SelectedOption{}
	}

	var meetingPoint *kernel.LocationSnapshot
	if i.meetingPoint != nil {
		s := i.meetingPoint.ToSnapshot()
		meetingPoint = &s
	}

	return ItemSnapshot{
		ID:              i.id.String(),
		ProductID:       i.productID.String(),
		ProductType:     string(i.productType),
		ProductTitle:    i.productTitle,
		ProductSlug:     i.productSlug,
		ProductImage:    i.productImage,
		UnitPrice:       i.unitPrice.ToSnapshot(),
		Quantity:        i.quantity,
		VariantID:       i.variantID,
		VariantName:     i.variantName,
		SelectedOptions: options,
		Metadata:        i.Metadata(),
		MeetingPoint:    meetingPoint,
	}
}

// ItemFromSnapshot restores a cart line item from its wire form,
// re-running all construction invariants.
func ItemFromSnapshot(snapshot ItemSnapshot) (Item, error) {
	id, err := kernel.UUIDFromString(snapshot.ID)
	if err != nil {
		return Item{}, err
	}

	productID, err := kernel.UUIDFromString(snapshot.ProductID)
	if err != nil {
		return Item{}, err
	}

	unitPrice, err := kernel.PriceFromSnapshot(snapshot.UnitPrice)
	if err != nil {
		return Item{}, err
	}

	item, err := NewItem(
		id,
		productID,
		ProductType(snapshot.ProductType),
		snapshot.ProductTitle,
		snapshot.ProductSlug,
		snapshot.ProductImage,
		unitPrice,
		snapshot.Quantity,
		snapshot.VariantID,
		snapshot.VariantName,
		snapshot.SelectedOptions,
		snapshot.Metadata,
	)
	if err != nil {
		return Item{}, err
	}

	if snapshot.MeetingPoint != nil {
		meetingPoint, pointErr := kernel.LocationFromSnapshot(*snapshot.MeetingPoint)
		if pointErr != nil {
			return Item{}, pointErr
		}
		return item.WithMeetingPoint(meetingPoint)
	}

	return item, nil
}

// ToSnapshot converts the cart to its wire form.
func (c *Cart) ToSnapshot() Snapshot {
	var userID *string
	if c.userID != nil {
		s := c.userID.String()
		userID = &s
	}

	items := make([]ItemSnapshot, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item.ToSnapshot())
	}

	return Snapshot{
		ID:        c.id.String(),
		UserID:    userID,
		SessionID: c.sessionID,
		Items:     items,
		Currency:  string(c.currency.Code()),
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
		ExpiresAt: c.expiresAt,
	}
}

// FromSnapshot restores a cart aggregate from its wire form,
// re-running all construction invariants.
func FromSnapshot(snapshot Snapshot) (*Cart, error) {
	id, err := kernel.UUIDFromString(snapshot.ID)
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if snapshot.UserID != nil {
		parsed, userErr := kernel.UUIDFromString(*snapshot.UserID)
		if userErr != nil {
			return nil, userErr
		}
		userID = &parsed
	}

	currency, err := kernel.CurrencyFromCode(kernel.CurrencyCode(snapshot.Currency))
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(snapshot.Items))
	for _, itemSnapshot := range snapshot.Items {
		item, itemErr := ItemFromSnapshot(itemSnapshot)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return RestoreCart(id, userID, snapshot.SessionID, items, currency,
		snapshot.CreatedAt, snapshot.UpdatedAt, snapshot.ExpiresAt)
}
