//go:build unit

package config_test

import (
	"testing"

	"transfer-engine/internal/domain/transfer"
	"transfer-engine/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogTOML = `
[routes.airport-city-center]
min_advance_hours = 4
allowed_vehicles = ["van", "bus"]

[routes.mountain-resort]
max_advance_days = 90
night_hours = ["20:00-07:00"]

[vehicles.bus]
max_passengers = 50
max_luggage = 40
`

func TestRouteCatalog(t *testing.T) {
	defaults := transfer.DefaultRouteConstraints()
	catalog, err := config.ParseRoutes(catalogTOML, defaults)
	require.NoError(t, err)

	t.Run("overrides apply per route", func(t *testing.T) {
		airport := catalog.ConstraintsFor("airport-city-center")
		assert.Equal(t, 4, airport.MinAdvanceHours)
		assert.Equal(t, defaults.MaxAdvanceDays, airport.MaxAdvanceDays)
		assert.True(t, airport.Allows(transfer.VehicleBus))
		assert.False(t, airport.Allows(transfer.VehicleSedan))

		resort := catalog.ConstraintsFor("mountain-resort")
		assert.Equal(t, 90, resort.MaxAdvanceDays)
		require.Len(t, resort.NightHours, 1)
		assert.True(t, resort.NightHours[0].Contains(20))
		assert.True(t, resort.NightHours[0].Contains(7))
		assert.False(t, resort.NightHours[0].Contains(12))
	})

	t.Run("unlisted routes inherit the defaults", func(t *testing.T) {
		other := catalog.ConstraintsFor("harbor-loop")
		assert.Equal(t, defaults.MinAdvanceHours, other.MinAdvanceHours)
		assert.Len(t, other.AllowedVehicles, 6)
	})

	t.Run("vehicle capacities can be overridden", func(t *testing.T) {
		bus, ok := catalog.CapacityFor(transfer.VehicleBus)
		require.True(t, ok)
		assert.Equal(t, 50, bus.MaxPassengers)
		assert.Equal(t, 40, bus.MaxLuggage)

		sedan, ok := catalog.CapacityFor(transfer.VehicleSedan)
		require.True(t, ok)
		assert.Equal(t, 4, sedan.MaxPassengers)
	})

	t.Run("unknown vehicle section fails the load", func(t *testing.T) {
		_, err := config.ParseRoutes("[vehicles.tuktuk]\nmax_passengers = 2\nmax_luggage = 1\n", defaults)
		assert.ErrorIs(t, err, config.ErrUnknownVehicleType)
	})

	t.Run("malformed route window fails the load", func(t *testing.T) {
		_, err := config.ParseRoutes("[routes.bad]\npeak_hours = [\"sevenish\"]\n", defaults)
		assert.ErrorIs(t, err, config.ErrInvalidHourWindow)
	})
}
