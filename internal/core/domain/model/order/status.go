package order

import (
	"errors"
	"fmt"

	"booking/internal/pkg/errs"
)

// ErrInvalidStateTransition is the sentinel for disallowed lifecycle
// transitions. Use errors.Is to classify; the concrete
// InvalidStateTransitionError names the current and requested states.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// InvalidStateTransitionError is returned when a lifecycle operation is
// attempted from a status that does not allow it.
type InvalidStateTransitionError struct {
	From string
	To   string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidStateTransition, e.From, e.To)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

func newTransitionError(from, to Status) error {
	return &InvalidStateTransitionError{From: from.String(), To: to.String()}
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Completed
//	   │            │       (requires paid)
//	   └─> Cancelled <┘
//
//	any paid status ──> Refunded
//
// Completed, Cancelled and Refunded are terminal states with no outgoing
// transitions (refund of a paid order being the single exception, since a
// completed order can still be refunded). All transition rules live here;
// the Order aggregate delegates to these methods and never re-encodes them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	// Orders in this status are waiting to be confirmed.
	StatusPending

	// StatusConfirmed indicates the order has been acknowledged and is
	// waiting for payment and fulfilment.
	StatusConfirmed

	// StatusProcessing indicates fulfilment has started.
	// Only reachable from Confirmed once payment has been captured.
	StatusProcessing

	// StatusCompleted indicates the order has been successfully fulfilled.
	StatusCompleted

	// StatusCancelled indicates the order was abandoned before fulfilment.
	StatusCancelled

	// StatusRefunded indicates payment was returned to the customer.
	StatusRefunded
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
		StatusRefunded:   "refunded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
		StatusRefunded:   "refunded",
	}
}

// StatusFromString parses a persisted status name into a Status.
//
// Returns:
//   - the matching Status if the name is valid
//   - (StatusUnknown, error) otherwise
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Processing, Completed,
// Cancelled, Refunded. StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has reached the end of the lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRefunded
}

// CanConfirm reports whether Confirm is allowed from the current status.
func (s Status) CanConfirm() bool {
	return s == StatusPending
}

// CanStartProcessing reports whether StartProcessing is allowed from the
// current status. The payment precondition is enforced by the aggregate.
func (s Status) CanStartProcessing() bool {
	return s == StatusConfirmed
}

// CanComplete reports whether Complete is allowed from the current status.
func (s Status) CanComplete() bool {
	return s == StatusProcessing
}

// CanCancel reports whether Cancel is allowed from the current status.
// Orders can only be cancelled before fulfilment starts.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanRefund reports whether Refund is allowed from the current status.
// Cancelled and already refunded orders cannot be refunded; the
// "payment was captured" precondition lives on PaymentStatus.
func (s Status) CanRefund() bool {
	return s != StatusCancelled && s != StatusRefunded && s != StatusUnknown
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns:
//   - (StatusConfirmed, nil) on valid transition
//   - (StatusUnknown, error) if transition is not allowed from current status
func (s Status) Confirm() (Status, error) {
	if !s.CanConfirm() {
		return StatusUnknown, newTransitionError(s, StatusConfirmed)
	}

	return StatusConfirmed, nil
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Confirmed -> Processing
func (s Status) StartProcessing() (Status, error) {
	if !s.CanStartProcessing() {
		return StatusUnknown, newTransitionError(s, StatusProcessing)
	}

	return StatusProcessing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed
func (s Status) Complete() (Status, error) {
	if !s.CanComplete() {
		return StatusUnknown, newTransitionError(s, StatusCompleted)
	}

	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return StatusUnknown, newTransitionError(s, StatusCancelled)
	}

	return StatusCancelled, nil
}

// Refund transitions the status to Refunded.
//
// Valid transitions: any status except Cancelled and Refunded. The caller
// must additionally verify that payment was captured.
func (s Status) Refund() (Status, error) {
	if !s.CanRefund() {
		return StatusUnknown, newTransitionError(s, StatusRefunded)
	}

	return StatusRefunded, nil
}
