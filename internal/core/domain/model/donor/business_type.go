package donor

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// BusinessType classifies the kind of business a donor runs.
type BusinessType int

const (
	// UnknownBusiness represents an invalid or undefined business type.
	// This value (0) helps catch uninitialized BusinessType values.
	UnknownBusiness BusinessType = iota

	// Restaurant is a food-service business donating prepared surplus.
	Restaurant

	// Grocery is a retail grocery donating unsold stock.
	Grocery

	// Bakery is a bakery donating unsold baked goods.
	Bakery

	// Other covers any donor business not listed above.
	Other
)

func getBusinessTypeStrings() map[BusinessType]string {
	return map[BusinessType]string{
		Restaurant: "restaurant",
		Grocery:    "grocery",
		Bakery:     "bakery",
		Other:      "other",
	}
}

// ParseBusinessType converts the wire representation of a business type into
// its domain value. Returns a ValueIsInvalidError for unrecognized input.
func ParseBusinessType(value string) (BusinessType, error) {
	for businessType, str := range getBusinessTypeStrings() {
		if str == value {
			return businessType, nil
		}
	}
	return UnknownBusiness, errs.NewValueIsInvalidErrorWithCause("businessType",
		fmt.Errorf("%q is not a valid business type", value))
}

// Validate checks that the BusinessType is one of the defined values.
func (b BusinessType) Validate() error {
	if _, ok := getBusinessTypeStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("businessType",
			fmt.Errorf("%d is not a valid business type", b))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (b BusinessType) String() string {
	if str, ok := getBusinessTypeStrings()[b]; ok {
		return str
	}
	return "unknown"
}
