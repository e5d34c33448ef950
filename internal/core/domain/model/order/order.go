package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order would end up without line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrTotalMismatch is returned when total does not equal subtotal + tax - discount.
	ErrTotalMismatch = errors.New("order total must equal subtotal plus tax minus discount")

	// ErrRefundAmountInvalid is returned when a refund amount is zero, negative,
	// in a different currency, or exceeds the order total.
	ErrRefundAmountInvalid = errors.New("refund amount must be positive and not exceed the order total")
)

// processingAgeWarningDays is the order age after which ValidateForProcessing
// emits a staleness warning.
const processingAgeWarningDays = 30

// Order is the aggregate root for a booking order. It owns the line items,
// participants, monetary breakdown, both status machines and the append-only
// workflow history.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Must contain at least one item
//   - Subtotal, tax, discount and total share one currency and
//     total = subtotal + tax - discount
//   - Status and payment status transitions follow the tables in status.go
//     and payment_status.go
//   - Workflow history is append-only
//   - Can only be created through NewOrder or RestoreOrder
//
// Every mutating operation returns a new, revalidated *Order and leaves the
// receiver untouched. A failed operation is never observable as partial state.
type Order struct {
	id            kernel.UUID
	orderNumber   string
	userID        *kernel.UUID
	status        Status
	paymentStatus PaymentStatus
	items         []Item
	participants  []Participant
	contactInfo   kernel.ContactInfo
	subtotal      kernel.Price
	tax           kernel.Price
	discount      kernel.Price
	total         kernel.Price
	paymentMethod string
	transactionID string
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
	workflowSteps []WorkflowStep

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in the pending state and records the
// order_created workflow step.
//
// userID is nil for guest orders. The monetary breakdown is validated:
// all four prices share one currency and total = subtotal + tax - discount.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	userID *kernel.UUID,
	items []Item,
	participants []Participant,
	contactInfo kernel.ContactInfo,
	subtotal kernel.Price,
	tax kernel.Price,
	discount kernel.Price,
	total kernel.Price,
	paymentMethod string,
	notes string,
) (*Order, error) {
	now := time.Now()

	step, err := NewWorkflowStep(StepOrderCreated, StepStatusCompleted, now, nil)
	if err != nil {
		return nil, err
	}

	return RestoreOrder(
		id,
		orderNumber,
		userID,
		StatusPending,
		PaymentPending,
		items,
		participants,
		contactInfo,
		subtotal,
		tax,
		discount,
		total,
		paymentMethod,
		"",
		notes,
		now,
		now,
		[]WorkflowStep{step},
	)
}

// RestoreOrder reconstructs an Order from persisted state, re-running all
// invariant checks. It is the single funnel every derived instance goes
// through, so no constructed order can bypass validation.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	userID *kernel.UUID,
	status Status,
	paymentStatus PaymentStatus,
	items []Item,
	participants []Participant,
	contactInfo kernel.ContactInfo,
	subtotal kernel.Price,
	tax kernel.Price,
	discount kernel.Price,
	total kernel.Price,
	paymentMethod string,
	transactionID string,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	workflowSteps []WorkflowStep,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("userId", err)
		}
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}
	if err := contactInfo.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("contactInfo", err)
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamps")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("item", err)
		}
	}
	for _, participant := range participants {
		if err := participant.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("participant", err)
		}
	}
	for _, step := range workflowSteps {
		if err := step.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("workflowStep", err)
		}
	}

	if err := validateBreakdown(subtotal, tax, discount, total); err != nil {
		return nil, err
	}

	order := &Order{
		id:            id,
		orderNumber:   strings.TrimSpace(orderNumber),
		status:        status,
		paymentStatus: paymentStatus,
		items:         copyItems(items),
		participants:  copyParticipants(participants),
		contactInfo:   contactInfo,
		subtotal:      subtotal,
		tax:           tax,
		discount:      discount,
		total:         total,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		workflowSteps: copySteps(workflowSteps),
		isConstructed: true,
	}
	if userID != nil {
		uid := *userID
		order.userID = &uid
	}

	return order, nil
}

// validateBreakdown checks currency consistency and the total equation.
func validateBreakdown(subtotal, tax, discount, total kernel.Price) error {
	for _, p := range []struct {
		name  string
		price kernel.Price
	}{
		{"subtotal", subtotal},
		{"tax", tax},
		{"discount", discount},
		{"total", total},
	} {
		if err := p.price.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(p.name, err)
		}
		if !p.price.Currency().IsEqual(total.Currency()) {
			return fmt.Errorf("%s: %w", p.name, kernel.ErrCurrencyMismatch)
		}
	}

	expected, err := subtotal.Add(tax)
	if err != nil {
		return err
	}
	expected, err = expected.Subtract(discount)
	if err != nil {
		return err
	}
	if !expected.IsEqual(total) {
		return ErrTotalMismatch
	}

	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the owning user's ID, or nil for guest orders.
func (o *Order) UserID() *kernel.UUID {
	if o.userID == nil {
		return nil
	}
	uid := *o.userID
	return &uid
}

// Status returns the lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return copyItems(o.items)
}

// Participants returns a copy of the order's participants.
func (o *Order) Participants() []Participant {
	return copyParticipants(o.participants)
}

// ContactInfo returns the customer contact details.
func (o *Order) ContactInfo() kernel.ContactInfo {
	return o.contactInfo
}

// Subtotal returns the sum of item totals before tax and discount.
func (o *Order) Subtotal() kernel.Price {
	return o.subtotal
}

// Tax returns the tax amount.
func (o *Order) Tax() kernel.Price {
	return o.tax
}

// Discount returns the discount amount.
func (o *Order) Discount() kernel.Price {
	return o.discount
}

// Total returns the amount the customer pays.
func (o *Order) Total() kernel.Price {
	return o.total
}

// PaymentMethod returns the payment method label, e.g. "credit_card".
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// TransactionID returns the payment gateway transaction reference,
// empty until the order is paid.
func (o *Order) TransactionID() string {
	return o.transactionID
}

// Notes returns free-form customer notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// WorkflowSteps returns a copy of the append-only workflow history,
// in the order the steps were recorded.
func (o *Order) WorkflowSteps() []WorkflowStep {
	return copySteps(o.workflowSteps)
}

// TotalQuantity returns the sum of item quantities.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// Validate checks if the Order was properly constructed.
func (o *Order) Validate() error {
	if !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Confirm transitions the order from pending to confirmed and records the
// order_confirmed workflow step.
func (o *Order) Confirm() (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	status, err := o.status.Confirm()
	if err != nil {
		return nil, err
	}

	return o.derive(status, o.paymentStatus, o.transactionID, StepOrderConfirmed, StepStatusCompleted, nil)
}

// MarkAsPaid records a successful payment capture: payment status moves to
// paid, the gateway transaction reference is stored, and a payment_processed
// workflow step is appended. The lifecycle status is unchanged.
func (o *Order) MarkAsPaid(transactionID string) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(transactionID) == "" {
		return nil, errs.NewValueIsRequiredError("transactionId")
	}
	if o.status.IsTerminal() {
		return nil, newTransitionError(o.status, o.status)
	}

	paymentStatus, err := o.paymentStatus.MarkPaid()
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{"transactionId": transactionID}
	return o.derive(o.status, paymentStatus, transactionID, StepPaymentProcessed, StepStatusCompleted, metadata)
}

// MarkPaymentFailed records a rejected payment attempt. The payment_processed
// step is appended with a failed status so the history shows the attempt.
func (o *Order) MarkPaymentFailed(reason string) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	paymentStatus, err := o.paymentStatus.MarkFailed()
	if err != nil {
		return nil, err
	}

	var metadata map[string]string
	if reason != "" {
		metadata = map[string]string{"reason": reason}
	}
	return o.derive(o.status, paymentStatus, o.transactionID, StepPaymentProcessed, StepStatusFailed, metadata)
}

// StartProcessing transitions the order from confirmed to processing.
// Fails with InvalidStateTransition unless payment has been captured.
func (o *Order) StartProcessing() (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	status, err := o.status.StartProcessing()
	if err != nil {
		return nil, err
	}
	if o.paymentStatus != PaymentPaid {
		return nil, &InvalidStateTransitionError{
			From: fmt.Sprintf("%s (payment %s)", o.status, o.paymentStatus),
			To:   StatusProcessing.String(),
		}
	}

	return o.derive(status, o.paymentStatus, o.transactionID, StepProcessingStarted, StepStatusCompleted, nil)
}

// Complete transitions the order from processing to completed and records
// the order_completed workflow step.
func (o *Order) Complete() (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	status, err := o.status.Complete()
	if err != nil {
		return nil, err
	}

	return o.derive(status, o.paymentStatus, o.transactionID, StepOrderCompleted, StepStatusCompleted, nil)
}

// Cancel transitions the order to cancelled. Only allowed before fulfilment
// starts (pending or confirmed). The optional reason is kept in the
// workflow step metadata.
func (o *Order) Cancel(reason string) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	status, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}

	var metadata map[string]string
	if reason != "" {
		metadata = map[string]string{"reason": reason}
	}
	return o.derive(status, o.paymentStatus, o.transactionID, StepOrderCancelled, StepStatusCompleted, metadata)
}

// Refund returns paid money to the customer. A nil amount refunds the full
// total; a partial amount moves the payment status to partially_refunded.
// Fails with InvalidStateTransition on an order that was never paid.
func (o *Order) Refund(amount *kernel.Price, reason string) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.paymentStatus != PaymentPaid {
		return nil, &InvalidStateTransitionError{
			From: fmt.Sprintf("%s (payment %s)", o.status, o.paymentStatus),
			To:   StatusRefunded.String(),
		}
	}

	status, err := o.status.Refund()
	if err != nil {
		return nil, err
	}

	refunded := o.total
	partial := false
	if amount != nil {
		if err := amount.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("amount", err)
		}
		if !amount.Currency().IsEqual(o.total.Currency()) {
			return nil, kernel.ErrCurrencyMismatch
		}
		if amount.IsZero() || amount.Amount() > o.total.Amount() {
			return nil, ErrRefundAmountInvalid
		}
		refunded = *amount
		partial = !amount.IsEqual(o.total)
	}

	paymentStatus, err := o.paymentStatus.Refund(partial)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{"amount": refunded.String()}
	if reason != "" {
		metadata["reason"] = reason
	}
	return o.derive(status, paymentStatus, o.transactionID, StepOrderRefunded, StepStatusCompleted, metadata)
}

// derive builds the successor aggregate for a lifecycle transition: new
// statuses, one appended workflow step, refreshed updatedAt. Everything else
// is carried over and revalidated through RestoreOrder.
func (o *Order) derive(
	status Status,
	paymentStatus PaymentStatus,
	transactionID string,
	stepName StepName,
	stepStatus StepStatus,
	stepMetadata map[string]string,
) (*Order, error) {
	now := time.Now()

	step, err := NewWorkflowStep(stepName, stepStatus, now, stepMetadata)
	if err != nil {
		return nil, err
	}

	steps := copySteps(o.workflowSteps)
	steps = append(steps, step)

	return RestoreOrder(
		o.id,
		o.orderNumber,
		o.userID,
		status,
		paymentStatus,
		o.items,
		o.participants,
		o.contactInfo,
		o.subtotal,
		o.tax,
		o.discount,
		o.total,
		o.paymentMethod,
		transactionID,
		o.notes,
		o.createdAt,
		now,
		steps,
	)
}

// CanBeCancelled reports whether Cancel would succeed, true only while the
// order is pending or confirmed.
func (o *Order) CanBeCancelled() bool {
	return o.status.CanCancel()
}

// CanBeRefunded reports whether Refund would succeed, true only once the
// order has been paid and not yet cancelled or refunded.
func (o *Order) CanBeRefunded() bool {
	return o.paymentStatus == PaymentPaid && o.status.CanRefund()
}

// CanBeProcessed reports whether StartProcessing would succeed and the order
// passes processing validation.
func (o *Order) CanBeProcessed() bool {
	return o.status.CanStartProcessing() && o.ValidateForProcessing().IsValid
}

func copyItems(items []Item) []Item {
	cp := make([]Item, len(items))
	copy(cp, items)
	return cp
}

func copyParticipants(participants []Participant) []Participant {
	cp := make([]Participant, len(participants))
	copy(cp, participants)
	return cp
}

func copySteps(steps []WorkflowStep) []WorkflowStep {
	cp := make([]WorkflowStep, len(steps))
	copy(cp, steps)
	return cp
}
