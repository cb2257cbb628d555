package posting

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// FoodType classifies the food offered by a surplus posting.
type FoodType int

const (
	// UnknownFood represents an invalid or undefined food type.
	UnknownFood FoodType = iota

	Vegetables
	Fruits
	Dairy
	Meat
	Grains
	Bakery
	Beverages
	OtherFood
)

func getFoodTypeStrings() map[FoodType]string {
	return map[FoodType]string{
		Vegetables: "vegetables",
		Fruits:     "fruits",
		Dairy:      "dairy",
		Meat:       "meat",
		Grains:     "grains",
		Bakery:     "bakery",
		Beverages:  "beverages",
		OtherFood:  "other",
	}
}

// ParseFoodType converts the wire representation of a food type into its
// domain value. Returns a ValueIsInvalidError for unrecognized input.
func ParseFoodType(value string) (FoodType, error) {
	for foodType, str := range getFoodTypeStrings() {
		if str == value {
			return foodType, nil
		}
	}
	return UnknownFood, errs.NewValueIsInvalidErrorWithCause("foodType",
		fmt.Errorf("%q is not a valid food type", value))
}

// Validate checks that the FoodType is one of the defined values.
func (f FoodType) Validate() error {
	if _, ok := getFoodTypeStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("foodType",
			fmt.Errorf("%d is not a valid food type", f))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (f FoodType) String() string {
	if str, ok := getFoodTypeStrings()[f]; ok {
		return str
	}
	return "unknown"
}
