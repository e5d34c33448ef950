package order

import (
	"fmt"
	"time"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// StepName identifies a lifecycle event in the order workflow history.
// The set of names is closed: every lifecycle operation appends exactly one
// step with its fixed name.
type StepName string

const (
	StepOrderCreated      StepName = "order_created"
	StepOrderConfirmed    StepName = "order_confirmed"
	StepPaymentProcessed  StepName = "payment_processed"
	StepProcessingStarted StepName = "processing_started"
	StepOrderCompleted    StepName = "order_completed"
	StepOrderCancelled    StepName = "order_cancelled"
	StepOrderRefunded     StepName = "order_refunded"
)

// getValidStepNames returns the closed set of workflow step names.
func getValidStepNames() map[StepName]struct{} {
	return map[StepName]struct{}{
		StepOrderCreated:      {},
		StepOrderConfirmed:    {},
		StepPaymentProcessed:  {},
		StepProcessingStarted: {},
		StepOrderCompleted:    {},
		StepOrderCancelled:    {},
		StepOrderRefunded:     {},
	}
}

// Validate checks if the StepName is part of the closed set.
func (n StepName) Validate() error {
	if _, ok := getValidStepNames()[n]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"step name",
			fmt.Errorf("%q is not a valid workflow step name", string(n)),
		)
	}
	return nil
}

// StepStatus is the outcome recorded on a workflow step.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// Validate checks if the StepStatus is one of pending, completed or failed.
func (s StepStatus) Validate() error {
	switch s {
	case StepStatusPending, StepStatusCompleted, StepStatusFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"step status",
			fmt.Errorf("%q is not a valid workflow step status", string(s)),
		)
	}
}

// WorkflowStep is an immutable, timestamped audit record of a lifecycle
// transition applied to an order. Steps are only ever appended to the order's
// history, never mutated or deleted.
type WorkflowStep struct {
	name      StepName
	status    StepStatus
	timestamp time.Time
	metadata  map[string]string

	guard.ConstructorGuard
}

// NewWorkflowStep creates a validated WorkflowStep.
// A nil metadata map is allowed; the map is copied to preserve immutability.
func NewWorkflowStep(name StepName, status StepStatus, timestamp time.Time, metadata map[string]string) (WorkflowStep, error) {
	if err := name.Validate(); err != nil {
		return WorkflowStep{}, err
	}
	if err := status.Validate(); err != nil {
		return WorkflowStep{}, err
	}
	if timestamp.IsZero() {
		return WorkflowStep{}, errs.NewValueIsRequiredError("timestamp")
	}

	return WorkflowStep{
		name:             name,
		status:           status,
		timestamp:        timestamp,
		metadata:         copyStepMetadata(metadata),
		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the fixed name of the step.
func (s WorkflowStep) Name() StepName {
	return s.name
}

// Status returns the recorded outcome of the step.
func (s WorkflowStep) Status() StepStatus {
	return s.status
}

// Timestamp returns when the step was recorded.
func (s WorkflowStep) Timestamp() time.Time {
	return s.timestamp
}

// Metadata returns a copy of the step's metadata.
func (s WorkflowStep) Metadata() map[string]string {
	return copyStepMetadata(s.metadata)
}

// Validate checks if the WorkflowStep was properly constructed.
func (s WorkflowStep) Validate() error {
	return s.ConstructorGuard.Validate(errs.NewValueIsRequiredError("workflow step"))
}

func copyStepMetadata(metadata map[string]string) map[string]string {
	if metadata == nil {
		return nil
	}
	cp := make(map[string]string, len(metadata))
	for k, v := range metadata {
		cp[k] = v
	}
	return cp
}
