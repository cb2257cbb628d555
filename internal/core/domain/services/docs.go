// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the food donation system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AccessPolicy: A domain service deciding whether an actor may perform a protected operation
//   - Dispatcher: A domain service pairing open postings with food requests and free drivers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
