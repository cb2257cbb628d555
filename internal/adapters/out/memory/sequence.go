package memory

import (
	"sync/atomic"

	"foodbridge/internal/core/domain/model/kernel"
)

// Sequence issues identifiers shared by every registry in a Store.
// Identifiers start at 1, never repeat and strictly increase in issue
// order. Safe for concurrent use.
type Sequence struct {
	counter atomic.Uint64
}

// Next issues the next identifier.
func (s *Sequence) Next() kernel.ID {
	return kernel.ID(s.counter.Add(1))
}

// Current returns the most recently issued identifier, or zero when none
// has been issued yet.
func (s *Sequence) Current() kernel.ID {
	return kernel.ID(s.counter.Load())
}
