package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle and payment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNumber retrieves an order aggregate by its human-readable
	// order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetByUser retrieves all orders owned by a user, newest first.
	GetByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetAllInProcessingStatus retrieves all orders currently being fulfilled.
	GetAllInProcessingStatus(ctx context.Context) ([]*order.Order, error)
}
