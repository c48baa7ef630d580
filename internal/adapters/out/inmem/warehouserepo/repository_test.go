package warehouserepo_test

import (
	"context"
	"testing"

	"parceltrack/internal/adapters/out/inmem/warehouserepo"
	"parceltrack/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemWarehouseRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id resolves to nil without error", func(t *testing.T) {
		registry := warehouserepo.NewInMemWarehouseRegistry()

		got, err := registry.Get(ctx, "W-404")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("re-registering an id replaces the aggregate", func(t *testing.T) {
		registry := warehouserepo.NewInMemWarehouseRegistry()
		first, err := warehouse.NewWarehouse("W-001", "Taipei Hub", 10)
		require.NoError(t, err)
		second, err := warehouse.NewWarehouse("W-001", "Kaohsiung Hub", 20)
		require.NoError(t, err)

		require.NoError(t, registry.Add(ctx, first))
		require.NoError(t, registry.Add(ctx, second))

		got, err := registry.Get(ctx, "W-001")
		require.NoError(t, err)
		assert.Same(t, second, got)
	})

	t.Run("lists warehouses sorted by id", func(t *testing.T) {
		registry := warehouserepo.NewInMemWarehouseRegistry()
		b, err := warehouse.NewWarehouse("W-002", "East Hub", 5)
		require.NoError(t, err)
		a, err := warehouse.NewWarehouse("W-001", "West Hub", 5)
		require.NoError(t, err)
		require.NoError(t, registry.Add(ctx, b))
		require.NoError(t, registry.Add(ctx, a))

		all, err := registry.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "W-001", all[0].ID())
		assert.Equal(t, "W-002", all[1].ID())
	})
}
