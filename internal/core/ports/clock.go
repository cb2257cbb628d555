package ports

import "time"

// Clock supplies the current time. Handlers take it as a dependency so
// tests can pin timestamps.
type Clock interface {
	Now() time.Time
}
