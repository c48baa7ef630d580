package trackingledger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/inmem/shipmentrepo"
	"parceltrack/internal/adapters/out/inmem/trackingledger"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rates"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/model/tracking"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createLedger(t *testing.T) (*trackingledger.InMemTrackingLedger, *shipmentrepo.InMemShipmentRepository) {
	t.Helper()
	shipments := shipmentrepo.NewInMemShipmentRepository()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return trackingledger.NewInMemTrackingLedger(shipments, nil, log), shipments
}

func appendEvent(t *testing.T, ledger *trackingledger.InMemTrackingLedger, input tracking.EventInput) *tracking.Event {
	t.Helper()
	event := ledger.Append(context.Background(), input)
	require.NotNil(t, event)
	return event
}

func transitInput(trackingID kernel.TrackingID, location, status string, at time.Time) tracking.EventInput {
	return tracking.EventInput{
		TrackingID:  trackingID,
		Timestamp:   at,
		Location:    location,
		StatusLabel: status,
		Kind:        tracking.KindTransit,
	}
}

func TestLedger_Append(t *testing.T) {
	t.Run("assigns increasing sequence numbers", func(t *testing.T) {
		ledger, _ := createLedger(t)
		trackingID := kernel.NewTrackingID()

		first := appendEvent(t, ledger, transitInput(trackingID, "Hub A", "In Transit", time.Time{}))
		second := appendEvent(t, ledger, transitInput(trackingID, "Hub B", "In Transit", time.Time{}))

		assert.Equal(t, int64(0), first.Sequence())
		assert.Equal(t, int64(1), second.Sequence())
	})

	t.Run("invalid input returns nil and records the error", func(t *testing.T) {
		ledger, _ := createLedger(t)
		ctx := context.Background()

		event := ledger.Append(ctx, tracking.EventInput{
			TrackingID: kernel.NewTrackingID(),
			Kind:       tracking.KindTransit,
		})

		assert.Nil(t, event)
		require.Len(t, ledger.Errors(ctx), 1)
		assert.Contains(t, ledger.Errors(ctx)[0], "location is required")

		health := ledger.Health(ctx)
		assert.Equal(t, ports.HealthDegraded, health.State)
		assert.Equal(t, 0, health.EventCount)
		assert.Equal(t, 1, health.ErrorCount)
	})

	t.Run("a failed append does not consume a sequence number", func(t *testing.T) {
		ledger, _ := createLedger(t)
		trackingID := kernel.NewTrackingID()

		ledger.Append(context.Background(), tracking.EventInput{TrackingID: trackingID, Kind: tracking.KindTransit})
		event := appendEvent(t, ledger, transitInput(trackingID, "Hub A", "In Transit", time.Time{}))

		assert.Equal(t, int64(0), event.Sequence())
	})
}

func TestLedger_History(t *testing.T) {
	t.Run("sorted by timestamp with sequence tiebreak", func(t *testing.T) {
		ledger, _ := createLedger(t)
		trackingID := kernel.NewTrackingID()
		base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

		// Appended out of chronological order on purpose.
		late := appendEvent(t, ledger, transitInput(trackingID, "Hub C", "Out for Delivery", base.Add(2*time.Hour)))
		early := appendEvent(t, ledger, transitInput(trackingID, "Hub A", "Picked Up", base))
		tieA := appendEvent(t, ledger, transitInput(trackingID, "Hub B", "In Transit", base.Add(time.Hour)))
		tieB := appendEvent(t, ledger, transitInput(trackingID, "Hub B", "In Transit - Sorting", base.Add(time.Hour)))

		history, err := ledger.History(context.Background(), trackingID)
		require.NoError(t, err)
		require.Len(t, history, 4)

		assert.Equal(t, early.Sequence(), history[0].Sequence())
		assert.Equal(t, tieA.Sequence(), history[1].Sequence())
		assert.Equal(t, tieB.Sequence(), history[2].Sequence())
		assert.Equal(t, late.Sequence(), history[3].Sequence())
	})

	t.Run("unknown id yields empty history", func(t *testing.T) {
		ledger, _ := createLedger(t)

		history, err := ledger.History(context.Background(), kernel.NewTrackingID())

		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("does not mix shipments", func(t *testing.T) {
		ledger, _ := createLedger(t)
		a := kernel.NewTrackingID()
		b := kernel.NewTrackingID()

		appendEvent(t, ledger, transitInput(a, "Hub A", "In Transit", time.Time{}))
		appendEvent(t, ledger, transitInput(b, "Hub B", "In Transit", time.Time{}))

		history, err := ledger.History(context.Background(), a)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.True(t, history[0].TrackingID().IsEqual(a))
	})
}

func TestLedger_CurrentStatus(t *testing.T) {
	t.Run("returns label of chronologically last event", func(t *testing.T) {
		ledger, _ := createLedger(t)
		trackingID := kernel.NewTrackingID()
		base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

		appendEvent(t, ledger, transitInput(trackingID, "Hub B", "Delivered", base.Add(time.Hour)))
		appendEvent(t, ledger, transitInput(trackingID, "Hub A", "Picked Up", base))

		status, err := ledger.CurrentStatus(context.Background(), trackingID)

		require.NoError(t, err)
		assert.Equal(t, "Delivered", status)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		ledger, _ := createLedger(t)

		_, err := ledger.CurrentStatus(context.Background(), kernel.NewTrackingID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestLedger_Search(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*trackingledger.InMemTrackingLedger, kernel.TrackingID, kernel.UUID) {
		ledger, shipments := createLedger(t)

		customerID := kernel.NewUUID()
		owned, err := shipment.NewShipment(
			kernel.NewTrackingID(), customerID, rates.StandardTier(),
			5, "30x20x10", 1000, "books", nil, 200, 0,
		)
		require.NoError(t, err)
		require.NoError(t, shipments.Add(ctx, owned))

		appendEvent(t, ledger, tracking.EventInput{
			TrackingID:  owned.TrackingID(),
			Timestamp:   base,
			Location:    "Warehouse W-001",
			StatusLabel: "In Transit",
			VehicleID:   "V-001",
			WarehouseID: "W-001",
			Kind:        tracking.KindTransit,
		})
		appendEvent(t, ledger, transitInput(kernel.NewTrackingID(), "Airport Hub", "In Transit", base.Add(time.Hour)))

		return ledger, owned.TrackingID(), customerID
	}

	t.Run("filters combine with AND", func(t *testing.T) {
		ledger, trackingID, _ := setup(t)

		events, err := ledger.Search(ctx, ports.EventFilter{
			TrackingID:  trackingID.String(),
			VehicleID:   "V-001",
			WarehouseID: "W-001",
		})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.True(t, events[0].TrackingID().IsEqual(trackingID))
	})

	t.Run("location filter is case-insensitive substring", func(t *testing.T) {
		ledger, _, _ := setup(t)

		events, err := ledger.Search(ctx, ports.EventFilter{LocationContains: "warehouse w-001"})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Warehouse W-001", events[0].Location())
	})

	t.Run("customer filter joins through the shipment repository", func(t *testing.T) {
		ledger, trackingID, customerID := setup(t)

		events, err := ledger.Search(ctx, ports.EventFilter{CustomerID: customerID.String()})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.True(t, events[0].TrackingID().IsEqual(trackingID))
	})

	t.Run("time range bounds are inclusive", func(t *testing.T) {
		ledger, _, _ := setup(t)

		events, err := ledger.Search(ctx, ports.EventFilter{From: base, To: base})

		require.NoError(t, err)
		require.Len(t, events, 1)
	})

	t.Run("mismatched filter yields no events", func(t *testing.T) {
		ledger, trackingID, _ := setup(t)

		events, err := ledger.Search(ctx, ports.EventFilter{
			TrackingID: trackingID.String(),
			VehicleID:  "V-999",
		})

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("malformed customer id errors", func(t *testing.T) {
		ledger, _, _ := setup(t)

		_, err := ledger.Search(ctx, ports.EventFilter{CustomerID: "not-a-uuid"})

		require.Error(t, err)
	})
}

func TestLedger_Health(t *testing.T) {
	ctx := context.Background()

	t.Run("UP with no errors", func(t *testing.T) {
		ledger, _ := createLedger(t)
		appendEvent(t, ledger, transitInput(kernel.NewTrackingID(), "Hub A", "In Transit", time.Time{}))

		health := ledger.Health(ctx)

		assert.Equal(t, ports.HealthUp, health.State)
		assert.Equal(t, 1, health.EventCount)
		assert.Zero(t, health.ErrorCount)
		assert.False(t, health.LastEventAt.IsZero())
	})

	t.Run("DEGRADED with one to three errors, DOWN above", func(t *testing.T) {
		ledger, _ := createLedger(t)
		bad := tracking.EventInput{TrackingID: kernel.NewTrackingID(), Kind: tracking.KindTransit}

		for i := 0; i < 3; i++ {
			ledger.Append(ctx, bad)
			assert.Equal(t, ports.HealthDegraded, ledger.Health(ctx).State)
		}

		ledger.Append(ctx, bad)
		assert.Equal(t, ports.HealthDown, ledger.Health(ctx).State)
	})
}

func TestLedger_ConsistencyIssues(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("counts adjacent out-of-order pairs per shipment", func(t *testing.T) {
		ledger, _ := createLedger(t)
		trackingID := kernel.NewTrackingID()

		appendEvent(t, ledger, transitInput(trackingID, "Hub A", "Picked Up", base.Add(time.Hour)))
		appendEvent(t, ledger, transitInput(trackingID, "Hub B", "In Transit", base)) // backwards
		appendEvent(t, ledger, transitInput(trackingID, "Hub C", "Delivered", base.Add(2*time.Hour)))

		issues, err := ledger.ConsistencyIssues(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, issues)
	})

	t.Run("interleaved shipments are judged independently", func(t *testing.T) {
		ledger, _ := createLedger(t)
		a := kernel.NewTrackingID()
		b := kernel.NewTrackingID()

		appendEvent(t, ledger, transitInput(a, "Hub A", "Picked Up", base))
		appendEvent(t, ledger, transitInput(b, "Hub B", "Picked Up", base.Add(2*time.Hour)))
		appendEvent(t, ledger, transitInput(a, "Hub C", "In Transit", base.Add(time.Hour)))

		issues, err := ledger.ConsistencyIssues(ctx)

		require.NoError(t, err)
		assert.Zero(t, issues)
	})
}
