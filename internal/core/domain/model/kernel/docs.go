// Package kernel provides core domain primitives shared by the booking domain model.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the cart and order aggregates.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Currency: A closed set of supported currencies with formatting and decimal rules
//   - Price: A monetary amount bound to a Currency with safe arithmetic
//   - Location: A value object representing a geographic address with coordinates
//   - ContactInfo: A value object holding validated customer contact details
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
