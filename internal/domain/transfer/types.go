package transfer

type VehicleType string

const (
	VehicleSedan     VehicleType = "sedan"
	VehicleSUV       VehicleType = "suv"
	VehicleVan       VehicleType = "van"
	VehicleSprinter  VehicleType = "sprinter"
	VehicleBus       VehicleType = "bus"
	VehicleLimousine VehicleType = "limousine"
)

func (v VehicleType) String() string {
	return string(v)
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleSedan, VehicleSUV, VehicleVan, VehicleSprinter, VehicleBus, VehicleLimousine:
		return true
	default:
		return false
	}
}

type TripType string

const (
	TripOneWay    TripType = "one_way"
	TripRoundTrip TripType = "round_trip"
)

func (t TripType) String() string {
	return string(t)
}

func (t TripType) IsRoundTrip() bool {
	return t == TripRoundTrip
}
