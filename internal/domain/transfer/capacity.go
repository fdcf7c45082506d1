package transfer

import "fmt"

// HighUtilizationThreshold is the load factor above which the form nudges
// the customer toward a larger vehicle.
const HighUtilizationThreshold = 0.80

// CheckCapacity compares requested passenger and luggage counts against a
// vehicle's limits. Hitting a maximum exactly is fine; only exceeding it
// is an error.
func CheckCapacity(passengers, luggage int, capacity VehicleCapacity) Result {
	result := NewResult()

	if passengers > capacity.MaxPassengers {
		result.AddError(FieldPassengers, fmt.Sprintf(
			"Maximum %d passengers for this vehicle", capacity.MaxPassengers))
	} else if overUtilized(passengers, capacity.MaxPassengers) {
		result.AddWarning(FieldPassengers, "Vehicle is near passenger capacity - consider a larger vehicle")
	}

	if luggage > capacity.MaxLuggage {
		result.AddError(FieldLuggage, fmt.Sprintf(
			"Maximum %d luggage items for this vehicle", capacity.MaxLuggage))
	} else if overUtilized(luggage, capacity.MaxLuggage) {
		result.AddWarning(FieldLuggage, "Vehicle is near luggage capacity - consider a larger vehicle")
	}

	return result
}

// overUtilized guards the zero-capacity case: with a zero maximum any
// positive count already errored above, so no ratio is computed.
func overUtilized(count, max int) bool {
	if max <= 0 {
		return false
	}
	return float64(count)/float64(max) > HighUtilizationThreshold
}
