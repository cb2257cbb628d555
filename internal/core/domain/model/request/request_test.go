package request_test

import (
	"testing"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/request"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFoodRequest(t *testing.T) {
	t.Run("valid_request_starts_unfulfilled", func(t *testing.T) {
		r, err := request.NewFoodRequest(kernel.ID(4), "canned goods", 12)
		require.NoError(t, err)
		require.NoError(t, r.Validate())

		assert.Equal(t, kernel.ID(4), r.ReceiverID())
		assert.Equal(t, "canned goods", r.Description())
		assert.Equal(t, 12, r.QuantityKg())
		assert.False(t, r.Fulfilled())
		assert.True(t, r.ID().IsZero())

		stored := r.WithID(kernel.ID(6))
		assert.Equal(t, kernel.ID(6), stored.ID())
	})

	t.Run("mark_fulfilled", func(t *testing.T) {
		r, err := request.NewFoodRequest(kernel.ID(4), "canned goods", 12)
		require.NoError(t, err)

		fulfilled := r.MarkFulfilled()
		assert.True(t, fulfilled.Fulfilled())
		assert.False(t, r.Fulfilled())
	})

	t.Run("invalid_fields_fail", func(t *testing.T) {
		_, err := request.NewFoodRequest(kernel.ID(0), "canned goods", 12)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = request.NewFoodRequest(kernel.ID(4), "", 12)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = request.NewFoodRequest(kernel.ID(4), "canned goods", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var r request.FoodRequest
		require.ErrorIs(t, r.Validate(), request.ErrFoodRequestIsNotConstructed)
	})
}
