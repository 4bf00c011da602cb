package shipment_test

import (
	"testing"

	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableShippingTypes(t *testing.T) {
	t.Run("should return the fixed ordered carrier set", func(t *testing.T) {
		expected := []string{"Нова Пошта", "Укр Пошта", "Meest Express", "Самовивіз"}

		assert.Equal(t, expected, shipment.AvailableShippingTypes())
	})

	t.Run("should be stable across calls", func(t *testing.T) {
		assert.Equal(t, shipment.AvailableShippingTypes(), shipment.AvailableShippingTypes())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		types := shipment.AvailableShippingTypes()
		types[0] = "Hacked Express"

		assert.Equal(t, "Нова Пошта", shipment.AvailableShippingTypes()[0])
	})
}

func TestNewShippingType(t *testing.T) {
	t.Run("should accept every supported carrier", func(t *testing.T) {
		for _, name := range shipment.AvailableShippingTypes() {
			st, err := shipment.NewShippingType(name)

			require.NoError(t, err)
			assert.Equal(t, name, st.String())
			require.NoError(t, st.Validate())
		}
	})

	t.Run("should reject an unsupported carrier", func(t *testing.T) {
		_, err := shipment.NewShippingType("Fake Express")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Shipping type is not available")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var st shipment.ShippingType

		require.Error(t, st.Validate())
	})
}
