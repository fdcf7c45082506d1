package transfer

// OptionSelection is an add-on the customer attached to the booking
// (child seat, meet-and-greet, extra stop). Name and Price come from the
// catalog and are display-only here.
type OptionSelection struct {
	ID       string
	Quantity int
	Name     string
	Price    float64
}

// BookingRequest is a candidate transfer booking as collected by the
// booking form. Dates and times arrive as strings; malformed values are
// reported as validation errors, not parse failures. Empty strings mean
// the field was not provided.
type BookingRequest struct {
	RouteID     string
	VehicleType VehicleType
	Passengers  int
	Luggage     int
	TripType    TripType
	PickupDate  string
	PickupTime  string
	ReturnDate  string
	ReturnTime  string
	Options     []OptionSelection
}

func (b BookingRequest) IsRoundTrip() bool {
	return b.TripType.IsRoundTrip()
}
