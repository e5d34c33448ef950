// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the booking system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CheckoutService: A domain service converting a validated cart into an order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
