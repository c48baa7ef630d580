package rates_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/rates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Run("looks up tiers by id", func(t *testing.T) {
		catalog, err := rates.NewCatalog(rates.BuiltInTiers()...)
		require.NoError(t, err)

		standard, ok := catalog.Get("STD")
		require.True(t, ok)
		assert.Equal(t, "Standard Delivery", standard.Name())

		_, ok = catalog.Get("NOPE")
		assert.False(t, ok)
	})

	t.Run("later duplicate replaces earlier", func(t *testing.T) {
		old, err := rates.NewTier("STD", "Old Standard", rates.SpeedStandard, 40, 10, nil)
		require.NoError(t, err)

		catalog, err := rates.NewCatalog(old, rates.StandardTier())
		require.NoError(t, err)

		tier, ok := catalog.Get("STD")
		require.True(t, ok)
		assert.Equal(t, "Standard Delivery", tier.Name())
		assert.Len(t, catalog.All(), 1)
	})

	t.Run("rejects invalid tiers", func(t *testing.T) {
		_, err := rates.NewCatalog(nil)
		require.ErrorIs(t, err, rates.ErrTierIsNotConstructed)
	})
}
