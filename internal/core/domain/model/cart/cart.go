package cart

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// defaultExpirationHours is how long a fresh cart stays valid.
const defaultExpirationHours = 24

// Domain errors for cart operations.
var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart or RestoreCart factory methods.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructors")
	// ErrItemNotFound is returned when an operation references an item id
	// that is not present in the cart.
	ErrItemNotFound = errors.New("cart item not found")
	// ErrCartIsExpired is returned when mutating a cart past its expiry time.
	ErrCartIsExpired = errors.New("cart is expired")
)

// Cart is the aggregate root for a purchasable cart: an ordered collection of
// bookable line items bound to a single currency, with an expiry.
//
// Cart follows these invariants:
//   - Every item's unit price currency equals the cart's currency
//   - Items are unique by id, and by productID+variantID composite key
//   - All item quantities are positive
//   - Can only be created through NewCart or RestoreCart
//
// Mutation operations never modify the receiver: each returns a new, fully
// validated Cart instance or an error, so no caller can ever observe a
// partially-updated cart. This makes the aggregate safe to hand across
// goroutines without locks.
type Cart struct {
	// id is the unique identifier for the cart
	id kernel.UUID

	// userID is the owning user's id; nil marks a guest cart
	userID *kernel.UUID

	// sessionID identifies the browsing session for guest carts
	sessionID string

	// items are the cart's line items, ordered by insertion
	items []Item

	// currency every item's unit price must be denominated in
	currency kernel.Currency

	createdAt time.Time
	updatedAt time.Time
	expiresAt time.Time

	// isConstructed ensures the cart was created via a constructor
	isConstructed bool
}

// NewCart creates an empty cart for a user or guest session.
// A nil userID marks a guest cart, which is then identified by sessionID.
// The cart expires defaultExpirationHours from creation.
func NewCart(id kernel.UUID, userID *kernel.UUID, sessionID string, currency kernel.Currency) (*Cart, error) {
	now := time.Now().UTC()
	return RestoreCart(id, userID, sessionID, nil, currency,
		now, now, now.Add(defaultExpirationHours*time.Hour))
}

// RestoreCart reconstructs a Cart aggregate from persistence or a snapshot.
// All invariants are re-checked; data that violates them never becomes a cart.
func RestoreCart(
	id kernel.UUID,
	userID *kernel.UUID,
	sessionID string,
	items []Item,
	currency kernel.Currency,
	createdAt, updatedAt, expiresAt time.Time,
) (*Cart, error) {
	c := &Cart{
		sessionID:     sessionID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setCurrency(currency),
		c.setItems(items),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// IsEqual compares two carts by their unique identifiers.
func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user's id, nil for guest carts.
func (c *Cart) UserID() *kernel.UUID {
	return c.userID
}

// SessionID returns the guest session identifier, empty for user carts.
func (c *Cart) SessionID() string {
	return c.sessionID
}

// Items returns a copy of the cart's line items.
func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Currency returns the cart's currency.
func (c *Cart) Currency() kernel.Currency {
	return c.currency
}

// CreatedAt returns when the cart was created.
func (c *Cart) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the cart was last mutated.
func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

// ExpiresAt returns when the cart stops being valid.
func (c *Cart) ExpiresAt() time.Time {
	return c.expiresAt
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// IsGuest reports whether the cart belongs to an anonymous session.
func (c *Cart) IsGuest() bool {
	return c.userID == nil
}

// IsExpired reports whether the cart is past its expiry time.
func (c *Cart) IsExpired() bool {
	return time.Now().UTC().After(c.expiresAt)
}

// ensureNotExpired guards item mutations on a cart past its expiry.
// Administrative operations (clear, extend, assign) stay allowed so an
// expired cart can still be rescued or emptied.
func (c *Cart) ensureNotExpired() error {
	if c.IsExpired() {
		return ErrCartIsExpired
	}
	return nil
}

// AddItem derives a new cart containing the given item.
//
// If an item with the same productID+variantID already exists, its quantity
// is incremented by the new item's quantity instead of inserting a duplicate
// row. De-duplication by this composite key is a hard rule, not cosmetic:
// the same product/variant pair never appears twice.
//
// The item's currency must match the cart's currency. Fails with
// ErrCartIsExpired on a cart past its expiry.
func (c *Cart) AddItem(item Item) (*Cart, error) {
	if err := errors.Join(c.Validate(), item.Validate()); err != nil {
		return nil, err
	}
	if err := c.ensureNotExpired(); err != nil {
		return nil, err
	}

	if !item.UnitPrice().Currency().IsEqual(c.currency) {
		return nil, fmt.Errorf("%w: item is %s, cart is %s",
			kernel.ErrCurrencyMismatch, item.UnitPrice().Currency(), c.currency)
	}

	items := c.Items()
	merged := false
	for idx, existing := range items {
		if existing.MatchesProduct(item.ProductID(), item.VariantID()) {
			updated, err := existing.withQuantity(existing.Quantity() + item.Quantity())
			if err != nil {
				return nil, err
			}
			items[idx] = updated
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	return c.derive(items, c.currency, c.userID, c.expiresAt)
}

// UpdateItemQuantity derives a new cart with the item's quantity replaced.
// The quantity must be positive; fails with ErrItemNotFound if no item has
// the given id.
func (c *Cart) UpdateItemQuantity(itemID kernel.UUID, quantity int) (*Cart, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.ensureNotExpired(); err != nil {
		return nil, err
	}

	items := c.Items()
	for idx, existing := range items {
		if existing.ID().IsEqual(itemID) {
			updated, err := existing.withQuantity(quantity)
			if err != nil {
				return nil, err
			}
			items[idx] = updated
			return c.derive(items, c.currency, c.userID, c.expiresAt)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// RemoveItem derives a new cart without the given item.
// Fails with ErrItemNotFound if no item has the given id.
func (c *Cart) RemoveItem(itemID kernel.UUID) (*Cart, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.ensureNotExpired(); err != nil {
		return nil, err
	}

	items := c.Items()
	for idx, existing := range items {
		if existing.ID().IsEqual(itemID) {
			items = append(items[:idx], items[idx+1:]...)
			return c.derive(items, c.currency, c.userID, c.expiresAt)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// Clear derives a new cart with no items. Always succeeds on a valid cart.
func (c *Cart) Clear() (*Cart, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c.derive(nil, c.currency, c.userID, c.expiresAt)
}

// UpdateCurrency derives a new cart denominated in the given currency.
// Existing items have their unit prices converted through the static rate
// table so the single-currency invariant keeps holding.
func (c *Cart) UpdateCurrency(currency kernel.Currency) (*Cart, error) {
	if err := errors.Join(c.Validate(), currency.Validate()); err != nil {
		return nil, err
	}

	if currency.IsEqual(c.currency) {
		return c.derive(c.Items(), c.currency, c.userID, c.expiresAt)
	}

	items := c.Items()
	for idx, existing := range items {
		converted, err := existing.UnitPrice().ConvertTo(currency)
		if err != nil {
			return nil, err
		}
		updated, err := existing.withUnitPrice(converted)
		if err != nil {
			return nil, err
		}
		items[idx] = updated
	}

	return c.derive(items, currency, c.userID, c.expiresAt)
}

// AssignToUser derives a new cart owned by the given user.
// Used when a guest logs in and their session cart becomes a user cart.
func (c *Cart) AssignToUser(userID kernel.UUID) (*Cart, error) {
	if err := errors.Join(c.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	return c.derive(c.Items(), c.currency, &userID, c.expiresAt)
}

// ExtendExpiration derives a new cart whose expiry is pushed out by the given
// number of hours from now. Zero hours applies the default of 24; negative
// hours are rejected.
func (c *Cart) ExtendExpiration(hours int) (*Cart, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if hours < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"hours",
			fmt.Errorf("%d is negative", hours),
		)
	}
	if hours == 0 {
		hours = defaultExpirationHours
	}

	expiresAt := time.Now().UTC().Add(time.Duration(hours) * time.Hour)
	return c.derive(c.Items(), c.currency, c.userID, expiresAt)
}

// derive builds the next cart state and revalidates every invariant.
// All mutation operations funnel through here so an invalid state can never
// escape the aggregate.
func (c *Cart) derive(
	items []Item, currency kernel.Currency, userID *kernel.UUID, expiresAt time.Time,
) (*Cart, error) {
	return RestoreCart(c.id, userID, c.sessionID, items, currency,
		c.createdAt, time.Now().UTC(), expiresAt)
}

// setID validates and sets the cart's unique identifier.
func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setUserID validates and sets the owning user, nil meaning guest.
func (c *Cart) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	c.userID = userID
	return nil
}

// setCurrency validates and sets the cart's currency.
func (c *Cart) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	c.currency = currency
	return nil
}

// setItems validates and sets the cart's items, enforcing the single-currency
// invariant and uniqueness by id and productID+variantID.
func (c *Cart) setItems(items []Item) error {
	seenIDs := make(map[kernel.UUID]struct{}, len(items))
	seenProducts := make(map[string]struct{}, len(items))

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		if !item.UnitPrice().Currency().IsEqual(c.currency) {
			return fmt.Errorf("%w: item %s is %s, cart is %s",
				kernel.ErrCurrencyMismatch, item.ID(), item.UnitPrice().Currency(), c.currency)
		}

		if _, ok := seenIDs[item.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("duplicate item id %s", item.ID()),
			)
		}
		seenIDs[item.ID()] = struct{}{}

		productKey := item.ProductID().String() + "/" + item.VariantID()
		if _, ok := seenProducts[productKey]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("duplicate product/variant %s", productKey),
			)
		}
		seenProducts[productKey] = struct{}{}
	}

	c.items = append([]Item(nil), items...)
	return nil
}
