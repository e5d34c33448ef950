// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart domain aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"time"

	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// Owner and expiry columns are relational for querying; line items are a
// jsonb document since they are only ever read back as part of the whole cart.
type CartDTO struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID          `gorm:"type:uuid;index"`
	SessionID string              `gorm:"type:varchar(255);index"`
	Items     []cart.ItemSnapshot `gorm:"type:jsonb;serializer:json;not null"`
	Currency  string              `gorm:"type:varchar(3);not null"`
	CreatedAt time.Time           `gorm:"not null"`
	UpdatedAt time.Time           `gorm:"not null"`
	ExpiresAt time.Time           `gorm:"not null;index"`
}

// TableName specifies the database table name for cart entities.
// Overrides GORM's default naming convention to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(c *cart.Cart) CartDTO {
	var userID *uuid.UUID
	if id := c.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	items := make([]cart.ItemSnapshot, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, item.ToSnapshot())
	}

	return CartDTO{
		ID:        c.ID().Bytes(),
		UserID:    userID,
		SessionID: c.SessionID(),
		Items:     items,
		Currency:  string(c.Currency().Code()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
		ExpiresAt: c.ExpiresAt(),
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
// Reconstructs the aggregate through FromSnapshot so every construction
// invariant is re-validated on the way out of the database.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *string
	if dto.UserID != nil {
		s := dto.UserID.String()
		userID = &s
	}

	items := dto.Items
	if items == nil {
		items = []cart.ItemSnapshot{}
	}

	return cart.FromSnapshot(cart.Snapshot{
		ID:        id.String(),
		UserID:    userID,
		SessionID: dto.SessionID,
		Items:     items,
		Currency:  dto.Currency,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
		ExpiresAt: dto.ExpiresAt,
	})
}
