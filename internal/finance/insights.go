package finance

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fleetops/internal/domain/models"
)

// Insight flags a deviation between what a route's cost profile expects and
// what a subtrip actually recorded. Insights are opportunistic: a subtrip
// without a resolved route, trip or vehicle simply produces none.
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	InsightFuelOveruse      = "fuel-overuse"
	InsightFuelUnderuse     = "fuel-underuse"
	InsightTollOverrun      = "toll-overrun"
	InsightTollUnderrun     = "toll-underrun"
	InsightSalaryOverrun    = "salary-overrun"
	InsightSalaryUnderrun   = "salary-underrun"
	InsightDistanceOverrun  = "distance-overrun"
	InsightDistanceUnderrun = "distance-underrun"
)

// expectationFor resolves the route's per-vehicle-type record by
// case-insensitive match, falling back to an all-zero record.
func expectationFor(route models.Route, vehicleType string) models.RouteSalary {
	want := strings.TrimSpace(strings.ToLower(vehicleType))
	for _, rec := range route.Salary {
		if strings.TrimSpace(strings.ToLower(rec.VehicleType)) == want {
			return rec
		}
	}
	return models.RouteSalary{}
}

// GenerateInsights compares actual diesel, toll, driver salary and distance
// against the route's expectations and emits up to four deviation messages.
// Dimension order is fixed; a dimension with zero delta emits nothing. Each
// message carries both the expected and actual values so a reader can verify
// the delta independently.
func GenerateInsights(s models.Subtrip) []Insight {
	if s.Route == nil || s.Trip == nil || s.Trip.Vehicle == nil {
		return []Insight{}
	}
	s = normalizeSubtrip(s)

	exp := expectationFor(*s.Route, s.Trip.Vehicle.VehicleType)

	var dieselLtr float64
	for _, e := range s.Expenses {
		if Classify(e, CategoryDiesel) {
			dieselLtr += e.DieselLtr
		}
	}
	tollPaid := sumCategory(s.Expenses, CategoryToll)
	salaryPaid := sumCategory(s.Expenses, CategoryDriverSalary)
	distance := s.EndKm - s.StartKm

	out := []Insight{}
	out = appendDeviation(out, InsightFuelOveruse, InsightFuelUnderuse,
		"Diesel usage", "ltr", exp.Diesel, dieselLtr)
	out = appendDeviation(out, InsightTollOverrun, InsightTollUnderrun,
		"Toll expense", "Rs", s.Route.TollAmt, tollPaid)
	out = appendDeviation(out, InsightSalaryOverrun, InsightSalaryUnderrun,
		"Driver salary", "Rs", exp.FixedSalary, salaryPaid)
	out = appendDeviation(out, InsightDistanceOverrun, InsightDistanceUnderrun,
		"Distance covered", "km", s.Route.Distance, distance)
	return out
}

func appendDeviation(out []Insight, overType, underType, label, unit string, expected, actual float64) []Insight {
	delta := actual - expected
	if delta == 0 {
		return out
	}
	typ := overType
	word := "above"
	if delta < 0 {
		typ = underType
		word = "below"
	}
	msg := fmt.Sprintf("%s of %s %s is %s the route standard of %s %s (difference %s %s)",
		label, num(actual), unit, word, num(expected), unit, num(math.Abs(delta)), unit)
	return append(out, Insight{Type: typ, Message: msg})
}

// num renders a float without trailing zeros (130, 12.5).
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
