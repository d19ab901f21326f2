// Package kernel provides core domain primitives for the maintenance system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - OrderNumber: The immutable business identifier of a maintenance order,
//     carrying the general ("MO-") or breakdown ("BD-") namespace prefix
//   - EquipmentRef: A value object referencing the maintained technical object,
//     either by equipment id or by functional location (exactly one)
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
