package usecase

import (
	"log/slog"

	"transfer-engine/internal/domain/transfer"
	"transfer-engine/internal/pkg/clock"
)

// Evaluation is the merged verdict the booking form consumes: the combined
// validation result, plus surcharge and discount assessments when the
// booking carries enough data to compute them.
type Evaluation struct {
	Result     transfer.Result
	Surcharges *transfer.SurchargeAssessment
	Discount   *transfer.DiscountAssessment
}

// Blocked reports whether submission must be refused.
func (e Evaluation) Blocked() bool {
	return !e.Result.IsValid()
}

type BookingEvaluator interface {
	Evaluate(req transfer.BookingRequest, capacity transfer.VehicleCapacity, constraints transfer.RouteConstraints) Evaluation
}

type bookingEvaluatorImpl struct {
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingEvaluator(clock clock.Clock, logger *slog.Logger) BookingEvaluator {
	return &bookingEvaluatorImpl{
		clock:  clock,
		logger: logger,
	}
}

// Evaluate runs the validator, the capacity checker, and the surcharge and
// discount resolvers in the order the booking wizard calls them, merging
// field messages into a single result. The discount resolver is never
// consulted for one-way trips; the surcharge resolver needs a parseable
// pickup time.
func (e *bookingEvaluatorImpl) Evaluate(
	req transfer.BookingRequest,
	capacity transfer.VehicleCapacity,
	constraints transfer.RouteConstraints,
) Evaluation {
	now := e.clock.Now()

	result := transfer.Validate(req, capacity, constraints, now)
	result.Merge(transfer.CheckCapacity(req.Passengers, req.Luggage, capacity))

	evaluation := Evaluation{Result: result}

	pickupTime, pickupTimeErr := transfer.NewClockTime(req.PickupTime)
	var returnTime *transfer.ClockTime
	if req.IsRoundTrip() {
		if rt, err := transfer.NewClockTime(req.ReturnTime); err == nil {
			returnTime = &rt
		}
	}

	if pickupTimeErr == nil {
		surcharges := transfer.AssessTimeSurcharges(pickupTime, returnTime, constraints)
		evaluation.Surcharges = &surcharges
	}

	if req.IsRoundTrip() {
		outboundDate, outErr := transfer.ParseDate(req.PickupDate)
		returnDate, retErr := transfer.ParseDate(req.ReturnDate)
		if outErr == nil && retErr == nil && !returnDate.Before(outboundDate) {
			var outbound *transfer.ClockTime
			if pickupTimeErr == nil {
				outbound = &pickupTime
			}
			discount := transfer.AssessRoundTripDiscount(outboundDate, returnDate, outbound, returnTime)
			evaluation.Discount = &discount
		}
	}

	e.logger.Debug("booking evaluated",
		slog.String("route_id", req.RouteID),
		slog.String("trip_type", req.TripType.String()),
		slog.Bool("valid", evaluation.Result.IsValid()),
		slog.Int("errors", len(evaluation.Result.Errors)),
		slog.Int("warnings", len(evaluation.Result.Warnings)),
	)

	return evaluation
}
