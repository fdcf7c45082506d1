package transfer

import (
	"fmt"
	"time"
)

// Field keys used by the booking form to attach messages to inputs.
const (
	FieldRouteID     = "route_id"
	FieldVehicleType = "vehicle_type"
	FieldBookingDate = "booking_date"
	FieldBookingTime = "booking_time"
	FieldReturnDate  = "return_date"
	FieldReturnTime  = "return_time"
	FieldPassengers  = "passengers"
	FieldLuggage     = "luggage"
)

const (
	// MaxRoundTripSpanDays caps how far a return may trail the outbound leg.
	MaxRoundTripSpanDays = 30
	// DiscountWarningSpanDays is where the round-trip discount advisory kicks in.
	DiscountWarningSpanDays = 7
	// MaxOptionQuantity is the largest add-on quantity accepted without review.
	MaxOptionQuantity = 10
)

// Validate checks a candidate booking against route constraints. Every
// applicable rule runs; messages accumulate per field rather than short
// circuiting, so the form can annotate all inputs in one pass. The caller
// injects now so advance-window checks are reproducible.
func Validate(booking BookingRequest, capacity VehicleCapacity, constraints RouteConstraints, now time.Time) Result {
	result := NewResult()

	if booking.RouteID == "" {
		result.AddError(FieldRouteID, "Route selection is required")
	}
	if booking.VehicleType == "" {
		result.AddError(FieldVehicleType, "Vehicle selection is required")
	}
	if booking.PickupDate == "" {
		result.AddError(FieldBookingDate, "Booking date is required")
	}
	if booking.PickupTime == "" {
		result.AddError(FieldBookingTime, "Booking time is required")
	}

	pickupDate, pickupDateErr := ParseDate(booking.PickupDate)
	pickupTime, pickupTimeErr := NewClockTime(booking.PickupTime)

	if booking.PickupTime != "" && pickupTimeErr != nil {
		result.AddError(FieldBookingTime, "Invalid time format (HH:MM)")
	}

	if booking.PickupDate != "" {
		if pickupDateErr != nil {
			result.AddError(FieldBookingDate, "Invalid date format (YYYY-MM-DD)")
		} else {
			validateAdvanceWindow(result, pickupAt(pickupDate, pickupTime, pickupTimeErr), constraints, now)
		}
	}

	if booking.VehicleType != "" && !constraints.Allows(booking.VehicleType) {
		result.AddError(FieldVehicleType, fmt.Sprintf(
			"Vehicle type %s is not available for route %s", booking.VehicleType, booking.RouteID))
	}

	if booking.IsRoundTrip() {
		validateReturnLeg(result, booking, pickupDate, pickupDateErr)
	}

	for _, opt := range booking.Options {
		key := optionField(opt.ID)
		if opt.Quantity < 1 {
			result.AddError(key, "Option quantity must be at least 1")
		} else if opt.Quantity > MaxOptionQuantity {
			result.AddWarning(key, fmt.Sprintf(
				"Quantity above %d requires manual confirmation", MaxOptionQuantity))
		}
	}

	if pickupTimeErr == nil {
		if hourInAny(pickupTime.Hour(), constraints.PeakHours) {
			result.AddWarning(FieldBookingTime, "Peak hour surcharge may apply to this booking time")
		}
		if hourInAny(pickupTime.Hour(), constraints.NightHours) {
			result.AddWarning(FieldBookingTime, "Night hour surcharge may apply to this booking time")
		}
	}

	return result
}

// pickupAt is the outbound instant used for window checks: the pickup date
// combined with the pickup time when it parsed, midnight otherwise.
func pickupAt(date time.Time, t ClockTime, timeErr error) time.Time {
	if timeErr != nil {
		return date
	}
	return t.On(date)
}

// validateAdvanceWindow applies the past / too-soon / too-far checks. They
// share one field key, so they run as a ladder and the first violation wins.
func validateAdvanceWindow(result Result, pickup time.Time, constraints RouteConstraints, now time.Time) {
	earliest := now.Add(time.Duration(constraints.MinAdvanceHours) * time.Hour)
	latest := now.AddDate(0, 0, constraints.MaxAdvanceDays)

	switch {
	case pickup.Before(now):
		result.AddError(FieldBookingDate, "Booking date cannot be in the past")
	case pickup.Before(earliest):
		result.AddError(FieldBookingDate, fmt.Sprintf(
			"Booking must be at least %d hours in advance", constraints.MinAdvanceHours))
	case pickup.After(latest):
		result.AddError(FieldBookingDate, fmt.Sprintf(
			"Booking cannot be more than %d days in advance", constraints.MaxAdvanceDays))
	}
}

func validateReturnLeg(result Result, booking BookingRequest, pickupDate time.Time, pickupDateErr error) {
	if booking.ReturnDate == "" {
		result.AddError(FieldReturnDate, "Return date is required for round trips")
	}
	if booking.ReturnTime == "" {
		result.AddError(FieldReturnTime, "Return time is required for round trips")
	}

	if booking.ReturnTime != "" {
		if _, err := NewClockTime(booking.ReturnTime); err != nil {
			result.AddError(FieldReturnTime, "Invalid time format (HH:MM)")
		}
	}

	if booking.ReturnDate == "" {
		return
	}
	returnDate, err := ParseDate(booking.ReturnDate)
	if err != nil {
		result.AddError(FieldReturnDate, "Invalid date format (YYYY-MM-DD)")
		return
	}
	if pickupDateErr != nil {
		return
	}

	switch {
	case !returnDate.After(pickupDate):
		result.AddError(FieldReturnDate, "Return date must be after outbound date")
	case returnDate.After(pickupDate.AddDate(0, 0, MaxRoundTripSpanDays)):
		result.AddError(FieldReturnDate, fmt.Sprintf(
			"Return date cannot be more than %d days after outbound date", MaxRoundTripSpanDays))
	case returnDate.After(pickupDate.AddDate(0, 0, DiscountWarningSpanDays)):
		result.AddWarning(FieldReturnDate, fmt.Sprintf(
			"Round trip discount may not apply to returns more than %d days after outbound", DiscountWarningSpanDays))
	}
}

func optionField(id string) string {
	return "option_" + id
}

func hourInAny(hour int, intervals []HourInterval) bool {
	for _, iv := range intervals {
		if iv.Contains(hour) {
			return true
		}
	}
	return false
}
