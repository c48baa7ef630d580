package billing_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRecord(t *testing.T, customerID kernel.UUID, amount float64, method billing.Method) *billing.Record {
	t.Helper()
	record, err := billing.NewRecord(customerID, kernel.NewTrackingID(), amount, method)
	require.NoError(t, err)
	require.NotNil(t, record)
	return record
}

func TestNewRecord(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("immediate payment keeps the amount", func(t *testing.T) {
		record := createRecord(t, customerID, 235.00, billing.MethodImmediate)

		assert.InDelta(t, 235.00, record.Amount(), 0.0001)
		assert.Equal(t, billing.MethodImmediate, record.PaymentMethod())
		assert.False(t, record.IsRefund())
		require.NoError(t, record.Validate())
	})

	t.Run("prepaid records always carry zero", func(t *testing.T) {
		record := createRecord(t, customerID, 585.00, billing.MethodPrepaid)

		assert.Zero(t, record.Amount())
		assert.False(t, record.IsRefund())
	})

	t.Run("refund amount is forced negative", func(t *testing.T) {
		record := createRecord(t, customerID, 100.00, billing.MethodRefund)

		assert.InDelta(t, -100.00, record.Amount(), 0.0001)
		assert.True(t, record.IsRefund())
	})

	t.Run("negative refund input stays negative", func(t *testing.T) {
		record := createRecord(t, customerID, -100.00, billing.MethodRefund)
		assert.InDelta(t, -100.00, record.Amount(), 0.0001)
	})

	t.Run("zero refund is rejected", func(t *testing.T) {
		_, err := billing.NewRecord(customerID, kernel.NewTrackingID(), 0, billing.MethodRefund)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative charge is rejected", func(t *testing.T) {
		_, err := billing.NewRecord(customerID, kernel.NewTrackingID(), -1, billing.MethodImmediate)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown method is rejected", func(t *testing.T) {
		_, err := billing.NewRecord(customerID, kernel.NewTrackingID(), 10, billing.Method("Barter"))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value record fails validation", func(t *testing.T) {
		var record billing.Record
		require.Error(t, record.Validate())
	})
}

func TestStatement(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("total sums only non-refund records", func(t *testing.T) {
		statement, err := billing.NewStatement(customerID)
		require.NoError(t, err)

		require.NoError(t, statement.Append(createRecord(t, customerID, 235.00, billing.MethodMonthly)))
		require.NoError(t, statement.Append(createRecord(t, customerID, 585.00, billing.MethodMonthly)))
		require.NoError(t, statement.Append(createRecord(t, customerID, 235.00, billing.MethodRefund)))

		assert.InDelta(t, 820.00, statement.Total(), 0.0001)
		assert.Len(t, statement.Records(), 3)
	})

	t.Run("total is recomputed on every read", func(t *testing.T) {
		statement, err := billing.NewStatement(customerID)
		require.NoError(t, err)
		assert.Zero(t, statement.Total())

		require.NoError(t, statement.Append(createRecord(t, customerID, 50.00, billing.MethodMonthly)))
		assert.InDelta(t, 50.00, statement.Total(), 0.0001)

		require.NoError(t, statement.Append(createRecord(t, customerID, 50.00, billing.MethodRefund)))
		assert.InDelta(t, 50.00, statement.Total(), 0.0001)
	})

	t.Run("rejects another customer's record", func(t *testing.T) {
		statement, err := billing.NewStatement(customerID)
		require.NoError(t, err)

		other := createRecord(t, kernel.NewUUID(), 10.00, billing.MethodMonthly)

		require.ErrorIs(t, statement.Append(other), billing.ErrRecordCustomerMismatch)
		assert.Empty(t, statement.Records())
	})
}

func TestClassification_PaymentMethod(t *testing.T) {
	cases := []struct {
		classification billing.Classification
		method         billing.Method
	}{
		{billing.ClassificationNonContract, billing.MethodImmediate},
		{billing.ClassificationPrepaid, billing.MethodPrepaid},
		{billing.ClassificationContract, billing.MethodMonthly},
	}

	for _, tc := range cases {
		t.Run(string(tc.classification), func(t *testing.T) {
			method, err := tc.classification.PaymentMethod()
			require.NoError(t, err)
			assert.Equal(t, tc.method, method)
		})
	}

	t.Run("unknown classification errors", func(t *testing.T) {
		_, err := billing.Classification("VIP").PaymentMethod()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
