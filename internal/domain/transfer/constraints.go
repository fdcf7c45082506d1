package transfer

// VehicleCapacity declares the hard limits of one vehicle type.
type VehicleCapacity struct {
	Type          VehicleType
	MaxPassengers int
	MaxLuggage    int
}

// RouteConstraints carries the booking rules of a single route. Looked up
// by the caller; the engine never resolves routes itself.
type RouteConstraints struct {
	MinAdvanceHours int
	MaxAdvanceDays  int
	AllowedVehicles []VehicleType
	PeakHours       []HourInterval
	NightHours      []HourInterval
}

// Allows reports whether the vehicle type may serve this route.
func (rc RouteConstraints) Allows(v VehicleType) bool {
	for _, allowed := range rc.AllowedVehicles {
		if allowed == v {
			return true
		}
	}
	return false
}

// DefaultRouteConstraints returns the platform-wide booking rules applied
// when a route has no overrides: 2h minimum lead, 30-day horizon, every
// vehicle type, morning/evening peaks and an overnight night window.
func DefaultRouteConstraints() RouteConstraints {
	return RouteConstraints{
		MinAdvanceHours: 2,
		MaxAdvanceDays:  30,
		AllowedVehicles: []VehicleType{
			VehicleSedan, VehicleSUV, VehicleVan, VehicleSprinter, VehicleBus, VehicleLimousine,
		},
		PeakHours: []HourInterval{
			NewHourInterval(MustClockTime("07:00"), MustClockTime("09:00")),
			NewHourInterval(MustClockTime("17:00"), MustClockTime("19:00")),
		},
		NightHours: []HourInterval{
			NewHourInterval(MustClockTime("22:00"), MustClockTime("06:00")),
		},
	}
}

// DefaultVehicleCapacities is the stock capacity table used when the fleet
// configuration does not override a vehicle type.
func DefaultVehicleCapacities() map[VehicleType]VehicleCapacity {
	return map[VehicleType]VehicleCapacity{
		VehicleSedan:     {Type: VehicleSedan, MaxPassengers: 4, MaxLuggage: 4},
		VehicleSUV:       {Type: VehicleSUV, MaxPassengers: 6, MaxLuggage: 6},
		VehicleVan:       {Type: VehicleVan, MaxPassengers: 8, MaxLuggage: 8},
		VehicleSprinter:  {Type: VehicleSprinter, MaxPassengers: 12, MaxLuggage: 12},
		VehicleBus:       {Type: VehicleBus, MaxPassengers: 20, MaxLuggage: 20},
		VehicleLimousine: {Type: VehicleLimousine, MaxPassengers: 8, MaxLuggage: 8},
	}
}
