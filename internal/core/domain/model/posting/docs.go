// Package posting provides domain entities and business logic for surplus
// food postings. It implements the Posting aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Posting: The aggregate root that manages posting identity, properties, and lifecycle
//   - Status: A state machine that enforces valid posting status transitions
//   - FoodType: The classification of the food offered
//
// Key business rules:
//   - Postings must reference a donor and carry a positive quantity
//   - Posting status follows a defined workflow: Open -> Assigned -> Delivered
//   - Each transition happens at most once; Delivered is terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package posting
