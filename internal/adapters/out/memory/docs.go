// Package memory provides the in-memory implementation of the registry and
// session ports. All entity collections live in process memory and share a
// single monotonic identifier sequence, so identifiers are unique across
// every collection, never reused and strictly increasing in issue order.
//
// Key Features:
//   - One Store owning every registry and the shared id sequence
//   - Generic Registry backed by a map plus insertion-order index
//   - Session instances that serialize whole command transactions, making
//     check-then-act sequences race free without per-entity locking
//
// Usage Patterns:
//
//	store := memory.NewStore()
//	factory := memory.NewSessionFactory(store)
//	session := factory.Create()
//
//	if err := session.Begin(ctx); err != nil {
//	    return err
//	}
//	defer session.Rollback(ctx)
//
//	stored, err := session.Postings().Insert(ctx, posting)
//	if err != nil {
//	    return err
//	}
//
//	return session.Commit(ctx)
//
// Queries that only read may use the Store's registries directly without a
// session; every individual registry operation is safe for concurrent use.
package memory
