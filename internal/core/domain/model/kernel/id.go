package kernel

import (
	"strconv"

	"foodbridge/internal/pkg/errs"
)

// ID is the unique numeric identifier of an entity. Identifiers are issued by
// the store's shared sequence, start at 1, strictly increase in creation
// order, and are never reused, across all entity kinds combined, not just
// within one registry.
//
// The zero value is not a valid identifier; it marks "not yet issued" and is
// rejected by Validate. Entities receive their ID from the registry at insert
// time, never from callers.
type ID uint64

// IsZero reports whether the identifier has not been issued.
func (id ID) IsZero() bool {
	return id == 0
}

// Validate checks that the identifier was issued. A zero identifier is
// treated as a missing required value, matching the required-field rule that
// every mutating operation applies to foreign identifiers.
func (id ID) Validate(paramName string) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// Uint64 returns the raw numeric value.
func (id ID) Uint64() uint64 {
	return uint64(id)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
