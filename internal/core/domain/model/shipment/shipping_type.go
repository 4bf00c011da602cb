package shipment

import (
	"fmt"

	"eshop/internal/pkg/errs"
)

// availableShippingTypes is the fixed ordered set of supported carriers.
var availableShippingTypes = []string{
	"Нова Пошта",
	"Укр Пошта",
	"Meest Express",
	"Самовивіз",
}

// AvailableShippingTypes returns the supported carrier names in their fixed
// order. The result is a copy; it is stable across calls.
func AvailableShippingTypes() []string {
	types := make([]string, len(availableShippingTypes))
	copy(types, availableShippingTypes)
	return types
}

// ShippingType is a value object wrapping a validated carrier name.
// The zero value is invalid; construct through NewShippingType.
type ShippingType struct {
	name string
}

// NewShippingType validates name against the fixed carrier set.
// An unsupported carrier fails with a message containing
// "Shipping type is not available".
func NewShippingType(name string) (ShippingType, error) {
	for _, t := range availableShippingTypes {
		if t == name {
			return ShippingType{name: name}, nil
		}
	}
	return ShippingType{}, errs.NewValueIsInvalidErrorWithCause("shipping type",
		fmt.Errorf("Shipping type is not available: %q", name))
}

// String returns the carrier name.
func (t ShippingType) String() string {
	return t.name
}

// Validate checks that the shipping type was constructed from a supported
// carrier.
func (t ShippingType) Validate() error {
	if _, err := NewShippingType(t.name); err != nil {
		return err
	}
	return nil
}

// IsEqual compares two shipping types by carrier name.
func (t ShippingType) IsEqual(other ShippingType) bool {
	return t.name == other.name
}
