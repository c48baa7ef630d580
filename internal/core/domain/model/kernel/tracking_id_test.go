package kernel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID(t *testing.T) {
	t.Run("should generate ten decimal digits", func(t *testing.T) {
		id := kernel.NewTrackingID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 10)
		for _, r := range id.String() {
			assert.GreaterOrEqual(t, r, '0')
			assert.LessOrEqual(t, r, '9')
		}
	})

	t.Run("should generate distinct identifiers", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			id := kernel.NewTrackingID()
			assert.False(t, seen[id.String()], "duplicate tracking id %s", id)
			seen[id.String()] = true
		}
	})
}

func TestTrackingIDFromString(t *testing.T) {
	t.Run("should accept a ten digit string", func(t *testing.T) {
		id, err := kernel.TrackingIDFromString("0123456789")

		require.NoError(t, err)
		assert.Equal(t, "0123456789", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject a short string", func(t *testing.T) {
		_, err := kernel.TrackingIDFromString("12345")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "trackingId")
	})

	t.Run("should reject non-digit characters", func(t *testing.T) {
		_, err := kernel.TrackingIDFromString("12345abcde")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-digit")
	})
}

func TestTrackingID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.TrackingID

		require.Error(t, id.Validate())
	})
}

func TestTrackingID_IsEqual(t *testing.T) {
	a, err := kernel.TrackingIDFromString("1111111111")
	require.NoError(t, err)
	b, err := kernel.TrackingIDFromString("1111111111")
	require.NoError(t, err)
	c := kernel.NewTrackingID()

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestUUID(t *testing.T) {
	t.Run("new UUID validates", func(t *testing.T) {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID
		require.Error(t, id.Validate())
	})

	t.Run("round trips through string form", func(t *testing.T) {
		id := kernel.NewUUID()
		parsed, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}
