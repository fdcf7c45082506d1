package transfer

// Fixed surcharge fractions applied on top of the base price. Both can
// trigger for the same hour if a route's windows overlap; memberships are
// evaluated independently and never reconciled here.
const (
	PeakSurchargeRate  = 0.20
	NightSurchargeRate = 0.25
)

// SurchargeAssessment reports time-of-day surcharges for a booking. The
// flags and rates describe the outbound leg only; return-leg membership is
// surfaced through Warnings, which downstream pricing does not read.
type SurchargeAssessment struct {
	HasPeakSurcharge  bool
	HasNightSurcharge bool
	PeakRate          float64
	NightRate         float64
	Warnings          []string
}

// AssessTimeSurcharges evaluates peak and night membership for the
// outbound pickup time, and for the return time when one is supplied.
func AssessTimeSurcharges(pickup ClockTime, ret *ClockTime, constraints RouteConstraints) SurchargeAssessment {
	assessment := SurchargeAssessment{}

	if hourInAny(pickup.Hour(), constraints.PeakHours) {
		assessment.HasPeakSurcharge = true
		assessment.PeakRate = PeakSurchargeRate
		assessment.Warnings = append(assessment.Warnings,
			"Peak hour surcharge (20%) applies to the booking time")
	}
	if hourInAny(pickup.Hour(), constraints.NightHours) {
		assessment.HasNightSurcharge = true
		assessment.NightRate = NightSurchargeRate
		assessment.Warnings = append(assessment.Warnings,
			"Night hour surcharge (25%) applies to the booking time")
	}

	if ret != nil {
		if hourInAny(ret.Hour(), constraints.PeakHours) {
			assessment.Warnings = append(assessment.Warnings,
				"Return trip falls in peak hours - an additional surcharge may apply")
		}
		if hourInAny(ret.Hour(), constraints.NightHours) {
			assessment.Warnings = append(assessment.Warnings,
				"Return trip falls in night hours - an additional surcharge may apply")
		}
	}

	return assessment
}
