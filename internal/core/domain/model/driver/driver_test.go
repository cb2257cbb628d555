package driver_test

import (
	"testing"
	"time"

	"foodbridge/internal/core/domain/model/driver"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	now := time.Now()

	t.Run("valid_profile", func(t *testing.T) {
		profile, err := driver.NewProfile("Bo", "5559876543", "bo@x.com", "2 Rd", now)
		require.NoError(t, err)
		require.NoError(t, profile.Validate())
		assert.Equal(t, "Bo", profile.Name())

		stored := profile.WithID(kernel.ID(3))
		assert.Equal(t, kernel.ID(3), stored.ID())
	})

	t.Run("missing_fields_fail", func(t *testing.T) {
		_, err := driver.NewProfile("Bo", "", "bo@x.com", "2 Rd", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("bad_contact_formats_fail", func(t *testing.T) {
		_, err := driver.NewProfile("Bo", "555987654x", "bo@x.com", "2 Rd", now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var profile driver.Profile
		require.ErrorIs(t, profile.Validate(), driver.ErrProfileIsNotConstructed)
	})
}
