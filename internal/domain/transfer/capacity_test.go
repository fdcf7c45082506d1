//go:build unit

package transfer_test

import (
	"testing"

	"transfer-engine/internal/domain/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCapacity(t *testing.T) {
	suv := transfer.VehicleCapacity{Type: transfer.VehicleSUV, MaxPassengers: 6, MaxLuggage: 6}

	t.Run("within limits", func(t *testing.T) {
		result := transfer.CheckCapacity(3, 2, suv)
		require.True(t, result.IsValid())
		assert.Empty(t, result.Warnings)
	})

	t.Run("exactly at the maximum is allowed", func(t *testing.T) {
		result := transfer.CheckCapacity(6, 6, suv)
		assert.True(t, result.IsValid())
	})

	t.Run("exceeding passengers", func(t *testing.T) {
		result := transfer.CheckCapacity(7, 2, suv)
		assert.Equal(t, "Maximum 6 passengers for this vehicle", result.Errors[transfer.FieldPassengers])
	})

	t.Run("exceeding luggage", func(t *testing.T) {
		result := transfer.CheckCapacity(2, 7, suv)
		assert.Equal(t, "Maximum 6 luggage items for this vehicle", result.Errors[transfer.FieldLuggage])
	})

	t.Run("high utilization warns", func(t *testing.T) {
		result := transfer.CheckCapacity(5, 5, suv)
		require.True(t, result.IsValid())
		assert.Contains(t, result.Warnings, transfer.FieldPassengers)
		assert.Contains(t, result.Warnings, transfer.FieldLuggage)
	})

	t.Run("eighty percent exactly does not warn", func(t *testing.T) {
		sedan := transfer.VehicleCapacity{Type: transfer.VehicleSedan, MaxPassengers: 5, MaxLuggage: 5}
		result := transfer.CheckCapacity(4, 4, sedan)
		assert.Empty(t, result.Warnings)
	})

	t.Run("zero capacity never divides", func(t *testing.T) {
		cargo := transfer.VehicleCapacity{Type: transfer.VehicleSedan, MaxPassengers: 0, MaxLuggage: 0}

		result := transfer.CheckCapacity(1, 0, cargo)
		assert.Contains(t, result.Errors, transfer.FieldPassengers)
		assert.NotContains(t, result.Errors, transfer.FieldLuggage)
		assert.Empty(t, result.Warnings)

		empty := transfer.CheckCapacity(0, 0, cargo)
		assert.True(t, empty.IsValid())
	})
}
