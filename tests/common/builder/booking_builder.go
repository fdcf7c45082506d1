//go:build unit

package builder

import (
	"transfer-engine/internal/domain/transfer"
)

// BookingBuilder produces a valid round-trip booking two days out from the
// reference instant used across the unit tests (2024-06-01T10:00Z); cases
// mutate a copy from there.
type BookingBuilder struct {
	RouteID     string
	VehicleType transfer.VehicleType
	Passengers  int
	Luggage     int
	TripType    transfer.TripType
	PickupDate  string
	PickupTime  string
	ReturnDate  string
	ReturnTime  string
	Options     []transfer.OptionSelection
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RouteID:     "airport-city-center",
		VehicleType: transfer.VehicleVan,
		Passengers:  4,
		Luggage:     4,
		TripType:    transfer.TripRoundTrip,
		PickupDate:  "2024-06-03",
		PickupTime:  "10:00",
		ReturnDate:  "2024-06-05",
		ReturnTime:  "14:00",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithOption(id string, quantity int) *BookingBuilder {
	b.Options = append(b.Options, transfer.OptionSelection{ID: id, Quantity: quantity})
	return b
}

func (b *BookingBuilder) OneWay() *BookingBuilder {
	b.TripType = transfer.TripOneWay
	b.ReturnDate = ""
	b.ReturnTime = ""
	return b
}

func (b *BookingBuilder) Build() transfer.BookingRequest {
	return transfer.BookingRequest{
		RouteID:     b.RouteID,
		VehicleType: b.VehicleType,
		Passengers:  b.Passengers,
		Luggage:     b.Luggage,
		TripType:    b.TripType,
		PickupDate:  b.PickupDate,
		PickupTime:  b.PickupTime,
		ReturnDate:  b.ReturnDate,
		ReturnTime:  b.ReturnTime,
		Options:     b.Options,
	}
}
