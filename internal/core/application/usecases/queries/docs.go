// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read through the registry ports and never modify state, so they
// run without a session; every individual registry read is safe for
// concurrent use.
package queries
