package queries_test

import (
	"testing"

	"eshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShippingTypesQuery_Valid(t *testing.T) {
	query := queries.NewGetShippingTypesQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetShippingTypesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShippingTypesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShippingTypesQueryIsNotConstructed)
}
