package transfer

import "time"

// Round-trip discount ladder. Thresholds use strict comparisons: exactly
// 7 days keeps the full rate, exactly 3 days keeps it too.
const (
	FullRoundTripDiscount    = 0.20
	ReducedRoundTripDiscount = 0.15
	SameDayRoundTripDiscount = 0.10

	maxDiscountSpanDays     = 7
	reducedDiscountSpanDays = 3
	minSameDayGapHours      = 4
)

// DiscountAssessment reports round-trip discount eligibility and the
// applicable fraction, with warnings explaining any reduction.
type DiscountAssessment struct {
	Eligible bool
	Rate     float64
	Warnings []string
}

// AssessRoundTripDiscount grades a round trip by the calendar-day gap
// between its legs. Times are only consulted for same-day returns, where
// a gap under four hours voids the discount outright.
func AssessRoundTripDiscount(outboundDate, returnDate time.Time, outboundTime, returnTime *ClockTime) DiscountAssessment {
	assessment := DiscountAssessment{
		Eligible: true,
		Rate:     FullRoundTripDiscount,
	}

	days := daysBetween(outboundDate, returnDate)

	switch {
	case days > maxDiscountSpanDays:
		assessment.Eligible = false
		assessment.Rate = 0
		assessment.Warnings = append(assessment.Warnings,
			"Round trip discount not available for trips longer than 7 days")
	case days > reducedDiscountSpanDays:
		assessment.Rate = ReducedRoundTripDiscount
		assessment.Warnings = append(assessment.Warnings,
			"Reduced round trip discount for trips longer than 3 days")
	case days == 0:
		assessment.Rate = SameDayRoundTripDiscount
		assessment.Warnings = append(assessment.Warnings,
			"Minimum round trip discount for same-day return")
		if outboundTime != nil && returnTime != nil {
			// Whole-hour subtraction, not a datetime delta.
			if returnTime.Hour()-outboundTime.Hour() < minSameDayGapHours {
				assessment.Eligible = false
				assessment.Rate = 0
				assessment.Warnings = append(assessment.Warnings,
					"Round trip discount not available for same-day returns with less than 4 hours between trips")
			}
		}
	}

	return assessment
}

// daysBetween is the calendar-day gap between two dates, time of day
// ignored.
func daysBetween(from, to time.Time) int {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)
	diff := toDay.Sub(fromDay)
	days := int(diff.Hours() / 24)
	if diff%(24*time.Hour) != 0 && diff > 0 {
		days++
	}
	return days
}
