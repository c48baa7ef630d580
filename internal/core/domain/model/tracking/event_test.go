package tracking_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	trackingID := kernel.NewTrackingID()

	t.Run("should create event with valid input", func(t *testing.T) {
		eta := time.Now().AddDate(0, 0, 2)
		event, err := tracking.NewEvent(7, tracking.EventInput{
			TrackingID:  trackingID,
			Location:    "Warehouse W-001",
			StatusLabel: "In Transit",
			Actor:       "carol",
			VehicleID:   "V-001",
			WarehouseID: "W-001",
			Kind:        tracking.KindTransit,
			ETA:         eta,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), event.Sequence())
		assert.True(t, event.TrackingID().IsEqual(trackingID))
		assert.Equal(t, "Warehouse W-001", event.Location())
		assert.Equal(t, "In Transit", event.StatusLabel())
		assert.Equal(t, "carol", event.Actor())
		assert.Equal(t, "V-001", event.VehicleID())
		assert.Equal(t, "W-001", event.WarehouseID())
		assert.Equal(t, tracking.KindTransit, event.Kind())
		assert.True(t, event.ETA().Equal(eta))
		assert.Empty(t, event.ExceptionKind())
		require.NoError(t, event.Validate())
	})

	t.Run("zero timestamp defaults to now", func(t *testing.T) {
		event, err := tracking.NewEvent(0, tracking.EventInput{
			TrackingID:  trackingID,
			Location:    "Origin Facility",
			StatusLabel: "Shipment Created",
			Kind:        tracking.KindCreated,
		})

		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), event.Timestamp(), time.Second)
	})

	t.Run("explicit timestamp is kept", func(t *testing.T) {
		at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		event, err := tracking.NewEvent(1, tracking.EventInput{
			TrackingID:  trackingID,
			Timestamp:   at,
			Location:    "Origin Facility",
			StatusLabel: "Shipment Created",
			Kind:        tracking.KindCreated,
		})

		require.NoError(t, err)
		assert.True(t, event.Timestamp().Equal(at))
	})

	t.Run("exception kind rides as metadata", func(t *testing.T) {
		event, err := tracking.NewEvent(2, tracking.EventInput{
			TrackingID:    trackingID,
			Location:      "Customs",
			StatusLabel:   "Held at Customs",
			Kind:          tracking.KindException,
			ExceptionKind: "customs_hold",
		})

		require.NoError(t, err)
		assert.Equal(t, "customs_hold", event.ExceptionKind())
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		_, err := tracking.NewEvent(3, tracking.EventInput{
			TrackingID: trackingID,
			Kind:       tracking.KindTransit,
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "location is required")
		assert.Contains(t, err.Error(), "statusLabel is required")
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := tracking.NewEvent(4, tracking.EventInput{
			TrackingID:  trackingID,
			Location:    "Somewhere",
			StatusLabel: "In Transit",
			Kind:        tracking.EventKind("TELEPORT"),
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative sequence", func(t *testing.T) {
		_, err := tracking.NewEvent(-1, tracking.EventInput{
			TrackingID:  trackingID,
			Location:    "Somewhere",
			StatusLabel: "In Transit",
			Kind:        tracking.KindTransit,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sequence")
	})

	t.Run("zero value event fails validation", func(t *testing.T) {
		var event tracking.Event
		require.Error(t, event.Validate())
	})
}
