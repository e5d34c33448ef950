// Package ports defines repository interfaces for the booking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Provides methods for storing, retrieving, and expiring cart entities
// for both authenticated users and guest sessions.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	// The cart must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	// The cart must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetByUser retrieves the active cart of an authenticated user.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// GetBySession retrieves the active guest cart for a session identifier.
	GetBySession(ctx context.Context, sessionID string) (*cart.Cart, error)

	// Delete removes a cart, typically after a successful checkout or an
	// explicit clear.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteExpired removes all carts whose expiresAt is before the given
	// moment and returns how many were removed. Used by the cleanup job.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
