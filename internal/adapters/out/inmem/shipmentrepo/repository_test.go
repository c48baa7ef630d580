package shipmentrepo_test

import (
	"context"
	"testing"

	"parceltrack/internal/adapters/out/inmem/shipmentrepo"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rates"
	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createShipment(t *testing.T, customerID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewTrackingID(), customerID, rates.StandardTier(),
		5, "30x20x10", 1000, "books", nil, 200, 0,
	)
	require.NoError(t, err)
	return s
}

func TestInMemShipmentRepository_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and retrieves", func(t *testing.T) {
		repo := shipmentrepo.NewInMemShipmentRepository()
		s := createShipment(t, kernel.NewUUID())

		require.NoError(t, repo.Add(ctx, s))

		got, err := repo.Get(ctx, s.TrackingID())
		require.NoError(t, err)
		assert.Same(t, s, got)
	})

	t.Run("rejects duplicate tracking id", func(t *testing.T) {
		repo := shipmentrepo.NewInMemShipmentRepository()
		s := createShipment(t, kernel.NewUUID())
		require.NoError(t, repo.Add(ctx, s))

		err := repo.Add(ctx, s)

		require.ErrorIs(t, err, shipmentrepo.ErrTrackingIDTaken)
	})
}

func TestInMemShipmentRepository_Get(t *testing.T) {
	repo := shipmentrepo.NewInMemShipmentRepository()

	_, err := repo.Get(context.Background(), kernel.NewTrackingID())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestInMemShipmentRepository_GetAllForCustomer(t *testing.T) {
	ctx := context.Background()
	repo := shipmentrepo.NewInMemShipmentRepository()
	owner := kernel.NewUUID()
	mine := createShipment(t, owner)
	other := createShipment(t, kernel.NewUUID())
	require.NoError(t, repo.Add(ctx, mine))
	require.NoError(t, repo.Add(ctx, other))

	owned, err := repo.GetAllForCustomer(ctx, owner)

	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Same(t, mine, owned[0])

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
