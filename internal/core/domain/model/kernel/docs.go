// Package kernel provides core domain primitives for the foodbridge system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - ID: the numeric identifier issued by the store's shared sequence,
//     unique across every entity kind combined
//   - Identity: the identity a caller presents when invoking an operation
//   - Phone, Email: validated contact value objects shared by all profiles
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
