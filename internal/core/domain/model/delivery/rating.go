package delivery

import (
	"fmt"
	"strconv"

	"foodbridge/internal/pkg/errs"
)

const maxRating = 5

// Rating is an optional receiver satisfaction score between 0 and 5.
// The zero value means no rating was given.
type Rating struct {
	value int
	isSet bool
}

// NewRating creates a Rating with validation. Valid scores run from 0 to 5
// inclusive.
func NewRating(value int) (Rating, error) {
	if value < 0 || value > maxRating {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, 0, maxRating)
	}
	return Rating{value: value, isSet: true}, nil
}

// NoRating returns the unset rating.
func NoRating() Rating {
	return Rating{}
}

// Value returns the score and whether a rating was given at all.
func (r Rating) Value() (int, bool) {
	return r.value, r.isSet
}

// IsSet reports whether a rating was given.
func (r Rating) IsSet() bool { return r.isSet }

// String implements fmt.Stringer. Unset ratings render as "unrated".
func (r Rating) String() string {
	if !r.isSet {
		return "unrated"
	}
	return strconv.Itoa(r.value)
}

// Equals checks two ratings for equality.
func (r Rating) Equals(other Rating) bool {
	return r == other
}

var _ fmt.Stringer = Rating{}
