// Package order provides domain entities and business logic for booking orders.
// It implements the Order aggregate root with lifecycle management, payment
// tracking and an append-only workflow history.
//
// The package includes:
//   - Order: The aggregate root created from a cart at checkout
//   - Status: A state machine for the fulfilment lifecycle
//   - PaymentStatus: A state machine for the payment side
//   - Participant: A person the order is booked for
//   - WorkflowStep: An immutable audit record of a lifecycle transition
//
// Key business rules:
//   - Orders are created once, from a non-empty cart; items are frozen snapshots
//   - Lifecycle: pending -> confirmed -> processing -> completed, with
//     cancellation before fulfilment and refund once paid
//   - Processing requires captured payment
//   - Every lifecycle operation appends exactly one workflow step
//   - Mutations derive a new, revalidated aggregate; the receiver is never
//     changed in place
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
