// Package cart provides the Cart aggregate of the booking domain: an ordered
// collection of bookable line items (tours, events, transfers) bound to a
// single currency, with an expiry.
//
// The aggregate enforces the cart invariants:
//   - Every item's unit price currency equals the cart's currency
//   - Items are unique by id and by productID+variantID composite key
//   - Quantities are always positive
//
// All mutation operations are pure: they derive a new, fully validated Cart
// instance instead of modifying the receiver, so a partially-updated cart is
// never observable and instances can be freely shared across goroutines.
//
// Business-rule validations (checkout readiness) are returned as structured
// ValidationResult values rather than errors, so callers can inspect and
// present the reasons.
package cart
