package posting_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/posting"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPosting(t *testing.T) {
	bestBefore := time.Now().Add(48 * time.Hour)

	t.Run("valid_posting_starts_open", func(t *testing.T) {
		p, err := posting.NewPosting(kernel.ID(1), posting.Vegetables, 25, bestBefore, "keep chilled")
		require.NoError(t, err)
		require.NoError(t, p.Validate())

		assert.Equal(t, kernel.ID(1), p.DonorID())
		assert.Equal(t, posting.Vegetables, p.FoodType())
		assert.Equal(t, 25, p.QuantityKg())
		assert.Equal(t, posting.Open, p.Status())
		assert.False(t, p.Assigned())
		assert.True(t, p.ID().IsZero())

		stored := p.WithID(kernel.ID(9))
		assert.Equal(t, kernel.ID(9), stored.ID())
	})

	t.Run("zero_donor_id_fails", func(t *testing.T) {
		_, err := posting.NewPosting(kernel.ID(0), posting.Vegetables, 25, bestBefore, "keep chilled")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_quantity_fails", func(t *testing.T) {
		_, err := posting.NewPosting(kernel.ID(1), posting.Vegetables, 0, bestBefore, "keep chilled")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = posting.NewPosting(kernel.ID(1), posting.Vegetables, -4, bestBefore, "keep chilled")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_best_before_fails", func(t *testing.T) {
		_, err := posting.NewPosting(kernel.ID(1), posting.Vegetables, 25, time.Time{}, "keep chilled")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_handling_instructions_fail", func(t *testing.T) {
		_, err := posting.NewPosting(kernel.ID(1), posting.Vegetables, 25, bestBefore, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_food_type_fails", func(t *testing.T) {
		_, err := posting.NewPosting(kernel.ID(1), posting.UnknownFood, 25, bestBefore, "keep chilled")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var p posting.Posting
		require.ErrorIs(t, p.Validate(), posting.ErrPostingIsNotConstructed)
	})
}

func TestPostingLifecycle(t *testing.T) {
	bestBefore := time.Now().Add(48 * time.Hour)

	newOpenPosting := func(t *testing.T) posting.Posting {
		t.Helper()
		p, err := posting.NewPosting(kernel.ID(1), posting.Bakery, 10, bestBefore, "boxed")
		require.NoError(t, err)
		return p
	}

	t.Run("open_assign_deliver", func(t *testing.T) {
		p := newOpenPosting(t)

		assigned, err := p.Assign()
		require.NoError(t, err)
		assert.Equal(t, posting.Assigned, assigned.Status())
		assert.True(t, assigned.Assigned())

		delivered, err := assigned.Deliver()
		require.NoError(t, err)
		assert.Equal(t, posting.Delivered, delivered.Status())
		assert.False(t, delivered.Assigned())
	})

	t.Run("cannot_assign_twice", func(t *testing.T) {
		p := newOpenPosting(t)

		assigned, err := p.Assign()
		require.NoError(t, err)

		_, err = assigned.Assign()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cannot_deliver_open_posting", func(t *testing.T) {
		p := newOpenPosting(t)

		_, err := p.Deliver()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("delivered_is_terminal", func(t *testing.T) {
		p := newOpenPosting(t)

		assigned, err := p.Assign()
		require.NoError(t, err)
		delivered, err := assigned.Deliver()
		require.NoError(t, err)

		_, err = delivered.Assign()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = delivered.Deliver()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
