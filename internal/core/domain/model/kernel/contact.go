package kernel

import (
	"fmt"
	"strings"

	"foodbridge/internal/pkg/errs"
)

// phoneLength is the exact number of digits a phone number must have.
const phoneLength = 10

// Phone is a validated phone number: exactly ten characters, every character
// numeric. The zero value is invalid and only NewPhone produces a valid one.
type Phone struct {
	value string
}

// NewPhone creates a Phone from its string representation.
//
// Returns a ValueIsRequiredError for an empty string and a
// ValueIsInvalidError when the value is not exactly ten numeric characters.
func NewPhone(value string) (Phone, error) {
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if len(value) != phoneLength {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not exactly %d characters", value, phoneLength))
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
				fmt.Errorf("%q contains a non-numeric character", value))
		}
	}
	return Phone{value: value}, nil
}

// IsZero reports whether the phone was not constructed via NewPhone.
func (p Phone) IsZero() bool {
	return p.value == ""
}

// String returns the raw phone number.
func (p Phone) String() string {
	return p.value
}

// Email is a validated email address: non-empty and containing '@'. No
// further RFC validation is applied. Comparison is case-sensitive exact
// match, which is also how registry-level uniqueness is checked.
type Email struct {
	value string
}

// NewEmail creates an Email from its string representation.
//
// Returns a ValueIsRequiredError for an empty string and a
// ValueIsInvalidError when the value does not contain '@'.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(value, "@") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q does not contain '@'", value))
	}
	return Email{value: value}, nil
}

// IsZero reports whether the email was not constructed via NewEmail.
func (e Email) IsZero() bool {
	return e.value == ""
}

// Equals reports whether two emails are the same, case-sensitively.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// String returns the raw email address.
func (e Email) String() string {
	return e.value
}
