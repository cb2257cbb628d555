package kernel

import "strconv"

// Identity is the identity a caller presents when invoking a mutating
// operation. For donors, receivers and drivers it is the numeric profile
// identifier; any other value names an external principal that only the
// governance authority can vouch for.
//
// Anonymous (the zero value) never matches a subject and is never
// governance-approved.
type Identity uint64

// Anonymous is the identity of an unidentified caller.
const Anonymous Identity = 0

// IsAnonymous reports whether the caller did not identify itself.
func (i Identity) IsAnonymous() bool {
	return i == Anonymous
}

// Is reports whether the caller is the entity with the given identifier,
// i.e. whether the caller acts on their own behalf. Anonymous callers and
// unissued identifiers never match.
func (i Identity) Is(subject ID) bool {
	return !i.IsAnonymous() && !subject.IsZero() && uint64(i) == uint64(subject)
}

// String implements fmt.Stringer.
func (i Identity) String() string {
	return strconv.FormatUint(uint64(i), 10)
}
