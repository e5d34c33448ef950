package order

import (
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
)

// Statistics is a derived, read-only snapshot of order metrics.
// ProcessingHours is set only for completed orders whose workflow history
// contains both the order_created and order_completed steps.
type Statistics struct {
	ItemCount          int
	ParticipantCount   int
	UniqueProductCount int
	TotalValue         kernel.Price
	AverageItemPrice   kernel.Price
	WorkflowStepCount  int
	ProcessingHours    *float64
}

// ValidateForProcessing checks whether fulfilment may start.
//
// Errors block processing: unpaid, cancelled or refunded order, no items,
// no participants, or a participant count that does not match the total item
// quantity. Warnings are informational: an order older than 30 days.
func (o *Order) ValidateForProcessing() kernel.ValidationResult {
	var errors []string
	var warnings []string

	if !o.paymentStatus.IsPaid() {
		errors = append(errors, "Order is not paid")
	}
	if o.status == StatusCancelled {
		errors = append(errors, "Order is cancelled")
	}
	if o.status == StatusRefunded {
		errors = append(errors, "Order is refunded")
	}
	if len(o.items) == 0 {
		errors = append(errors, "Order has no items")
	}
	if len(o.participants) == 0 {
		errors = append(errors, "Order has no participants")
	}

	if totalQuantity := o.TotalQuantity(); len(o.participants) > 0 && len(o.participants) != totalQuantity {
		errors = append(errors, fmt.Sprintf(
			"Participant count %d does not match total item quantity %d",
			len(o.participants), totalQuantity,
		))
	}

	if time.Since(o.createdAt) > processingAgeWarningDays*24*time.Hour {
		warnings = append(warnings, fmt.Sprintf("Order is older than %d days", processingAgeWarningDays))
	}

	return kernel.NewValidationResult(errors, warnings)
}

// Statistics derives order metrics. Average item price is total value divided
// by the summed quantity; the zero quantity case cannot occur because orders
// always carry at least one item with a positive quantity.
func (o *Order) Statistics() Statistics {
	uniqueProducts := make(map[string]struct{}, len(o.items))
	itemCount := 0
	for _, item := range o.items {
		itemCount += item.Quantity()
		uniqueProducts[item.ProductID().String()] = struct{}{}
	}

	average := o.total
	if itemCount > 0 {
		if avg, err := o.total.MultiplyBy(1.0 / float64(itemCount)); err == nil {
			average = avg
		}
	}

	return Statistics{
		ItemCount:          itemCount,
		ParticipantCount:   len(o.participants),
		UniqueProductCount: len(uniqueProducts),
		TotalValue:         o.total,
		AverageItemPrice:   average,
		WorkflowStepCount:  len(o.workflowSteps),
		ProcessingHours:    o.processingHours(),
	}
}

// processingHours returns the hour delta between the order_created and
// order_completed steps, or nil unless the order is completed and both steps
// are present.
func (o *Order) processingHours() *float64 {
	if o.status != StatusCompleted {
		return nil
	}

	var created, completed *time.Time
	for _, step := range o.workflowSteps {
		switch step.Name() {
		case StepOrderCreated:
			if created == nil {
				t := step.Timestamp()
				created = &t
			}
		case StepOrderCompleted:
			t := step.Timestamp()
			completed = &t
		}
	}
	if created == nil || completed == nil {
		return nil
	}

	hours := completed.Sub(*created).Hours()
	return &hours
}
