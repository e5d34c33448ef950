package order

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// PaymentStatus tracks the payment side of an order independently from the
// fulfilment lifecycle.
//
// State transitions:
//
//	PaymentPending ──> PaymentPaid ──> PaymentRefunded
//	      │                 └────────> PaymentPartiallyRefunded
//	      └──> PaymentFailed
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of a new order.
	PaymentPending

	// PaymentPaid indicates payment was captured in full.
	PaymentPaid

	// PaymentFailed indicates the payment attempt was rejected.
	PaymentFailed

	// PaymentRefunded indicates the full amount was returned.
	PaymentRefunded

	// PaymentPartiallyRefunded indicates part of the amount was returned.
	PaymentPartiallyRefunded
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their
// string representations.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:           "unknown",
		PaymentPending:           "pending",
		PaymentPaid:              "paid",
		PaymentFailed:            "failed",
		PaymentRefunded:          "refunded",
		PaymentPartiallyRefunded: "partially_refunded",
	}
}

// getValidPaymentStatusStrings returns a map of only valid PaymentStatus values.
func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:           "pending",
		PaymentPaid:              "paid",
		PaymentFailed:            "failed",
		PaymentRefunded:          "refunded",
		PaymentPartiallyRefunded: "partially_refunded",
	}
}

// PaymentStatusFromString parses a persisted payment status name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getValidPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the payment status.
// This method implements the fmt.Stringer interface.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsPaid reports whether payment was captured. Partially refunded orders
// still count as paid.
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentPaid || s == PaymentPartiallyRefunded
}

// MarkPaid transitions pending -> paid.
func (s PaymentStatus) MarkPaid() (PaymentStatus, error) {
	if s != PaymentPending {
		return PaymentUnknown, &InvalidStateTransitionError{
			From: s.String(),
			To:   PaymentPaid.String(),
		}
	}

	return PaymentPaid, nil
}

// MarkFailed transitions pending -> failed.
func (s PaymentStatus) MarkFailed() (PaymentStatus, error) {
	if s != PaymentPending {
		return PaymentUnknown, &InvalidStateTransitionError{
			From: s.String(),
			To:   PaymentFailed.String(),
		}
	}

	return PaymentFailed, nil
}

// Refund transitions paid -> refunded (full) or
// paid -> partially_refunded (partial).
func (s PaymentStatus) Refund(partial bool) (PaymentStatus, error) {
	if s != PaymentPaid {
		to := PaymentRefunded
		if partial {
			to = PaymentPartiallyRefunded
		}
		return PaymentUnknown, &InvalidStateTransitionError{
			From: s.String(),
			To:   to.String(),
		}
	}

	if partial {
		return PaymentPartiallyRefunded, nil
	}
	return PaymentRefunded, nil
}
