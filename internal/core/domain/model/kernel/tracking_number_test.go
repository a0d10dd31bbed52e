package kernel_test

import (
	"testing"

	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("renders_prefix_and_padded_counter", func(t *testing.T) {
		tn := kernel.NewTrackingNumber(1)
		assert.Equal(t, "TRK-00000001", tn.String())

		tn = kernel.NewTrackingNumber(42)
		assert.Equal(t, "TRK-00000042", tn.String())
	})

	t.Run("counter_wider_than_padding_is_not_truncated", func(t *testing.T) {
		tn := kernel.NewTrackingNumber(123456789)
		assert.Equal(t, "TRK-123456789", tn.String())
	})

	t.Run("is_valid", func(t *testing.T) {
		require.NoError(t, kernel.NewTrackingNumber(7).Validate())
	})
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		tn, err := kernel.TrackingNumberFromString("TRK-00000042")
		require.NoError(t, err)
		assert.Equal(t, "TRK-00000042", tn.String())
		assert.True(t, tn.IsEqual(kernel.NewTrackingNumber(42)))
	})

	t.Run("invalid_input", func(t *testing.T) {
		for _, input := range []string{"", "TRK-", "TRK-abc", "00000042", "XYZ-00000042"} {
			_, err := kernel.TrackingNumberFromString(input)
			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestTrackingNumber_Validate_ZeroValue(t *testing.T) {
	var tn kernel.TrackingNumber
	err := tn.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTrackingNumber_IsEqual(t *testing.T) {
	a := kernel.NewTrackingNumber(5)
	b := kernel.NewTrackingNumber(5)
	c := kernel.NewTrackingNumber(6)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
