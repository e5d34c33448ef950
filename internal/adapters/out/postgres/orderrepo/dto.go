// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status, payment and money fields are relational columns so the read side
// can filter and aggregate over them; the frozen line items, participants
// and workflow history are jsonb documents.
type OrderDTO struct {
	ID            uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	OrderNumber   string                       `gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID        *uuid.UUID                   `gorm:"type:uuid;index"`
	Status        string                       `gorm:"type:varchar(16);not null;index"`
	PaymentStatus string                       `gorm:"type:varchar(24);not null;index"`
	Items         []order.ItemSnapshot         `gorm:"type:jsonb;serializer:json;not null"`
	Participants  []order.ParticipantSnapshot  `gorm:"type:jsonb;serializer:json;not null"`
	ContactInfo   kernel.ContactInfoSnapshot   `gorm:"type:jsonb;serializer:json;not null"`
	Subtotal      float64                      `gorm:"type:numeric(12,2);not null"`
	Tax           float64                      `gorm:"type:numeric(12,2);not null"`
	Discount      float64                      `gorm:"type:numeric(12,2);not null"`
	TotalAmount   float64                      `gorm:"type:numeric(12,2);not null"`
	Currency      string                       `gorm:"type:varchar(3);not null"`
	PaymentMethod string                       `gorm:"type:varchar(64);not null"`
	TransactionID string                       `gorm:"type:varchar(255)"`
	Notes         string                       `gorm:"type:text"`
	CreatedAt     time.Time                    `gorm:"not null;index"`
	UpdatedAt     time.Time                    `gorm:"not null"`
	WorkflowSteps []order.WorkflowStepSnapshot `gorm:"type:jsonb;serializer:json;not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	snapshot := o.ToSnapshot()

	var userID *uuid.UUID
	if id := o.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		OrderNumber:   snapshot.OrderNumber,
		UserID:        userID,
		Status:        snapshot.Status,
		PaymentStatus: snapshot.PaymentStatus,
		Items:         snapshot.Items,
		Participants:  snapshot.Participants,
		ContactInfo:   snapshot.ContactInfo,
		Subtotal:      snapshot.Subtotal.Amount,
		Tax:           snapshot.Tax.Amount,
		Discount:      snapshot.Discount.Amount,
		TotalAmount:   snapshot.Total.Amount,
		Currency:      snapshot.Total.Currency,
		PaymentMethod: snapshot.PaymentMethod,
		TransactionID: snapshot.TransactionID,
		Notes:         snapshot.Notes,
		CreatedAt:     snapshot.CreatedAt,
		UpdatedAt:     snapshot.UpdatedAt,
		WorkflowSteps: snapshot.WorkflowSteps,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the aggregate through FromSnapshot so every construction
// invariant is re-validated on the way out of the database.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *string
	if dto.UserID != nil {
		s := dto.UserID.String()
		userID = &s
	}

	priceOf := func(amount float64) kernel.PriceSnapshot {
		return kernel.PriceSnapshot{Amount: amount, Currency: dto.Currency}
	}

	return order.FromSnapshot(order.Snapshot{
		ID:            id.String(),
		OrderNumber:   dto.OrderNumber,
		UserID:        userID,
		Status:        dto.Status,
		PaymentStatus: dto.PaymentStatus,
		Items:         dto.Items,
		Participants:  dto.Participants,
		ContactInfo:   dto.ContactInfo,
		Subtotal:      priceOf(dto.Subtotal),
		Tax:           priceOf(dto.Tax),
		Discount:      priceOf(dto.Discount),
		Total:         priceOf(dto.TotalAmount),
		PaymentMethod: dto.PaymentMethod,
		TransactionID: dto.TransactionID,
		Notes:         dto.Notes,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		WorkflowSteps: dto.WorkflowSteps,
	})
}
