package finance

import (
	"strings"
	"testing"

	"fleetops/internal/domain/models"
)

func fullSubtrip() models.Subtrip {
	return models.Subtrip{
		StartKm: 100,
		EndKm:   550,
		Route: &models.Route{
			RouteCode: "DEL-JPR",
			Distance:  450,
			TollAmt:   800,
			Salary: []models.RouteSalary{
				{VehicleType: "Taurus", FixedSalary: 1200, Diesel: 100, AdBlue: 10, AdvanceAmt: 500},
			},
		},
		Trip: &models.Trip{Vehicle: &models.Vehicle{VehicleNo: "RJ14 GA 1234", VehicleType: "taurus"}},
		Expenses: []models.Expense{
			{ExpenseType: "diesel", Amount: 9000, DieselLtr: 100},
			{ExpenseType: "toll", Amount: 800},
			{ExpenseType: "driver-salary", Amount: 1200},
		},
	}
}

func TestGenerateInsightsMissingRefsReturnEmpty(t *testing.T) {
	base := fullSubtrip()
	for i := 0; i < 7; i++ {
		s := base
		if i&1 != 0 {
			s.Route = nil
		}
		if i&2 != 0 {
			s.Trip = nil
		}
		if i&4 != 0 && s.Trip != nil {
			trip := *s.Trip
			trip.Vehicle = nil
			s.Trip = &trip
		}
		if i == 0 {
			continue
		}
		if got := GenerateInsights(s); len(got) != 0 {
			t.Fatalf("case %d: expected no insights with missing refs, got %v", i, got)
		}
	}
}

func TestGenerateInsightsFuelOveruse(t *testing.T) {
	s := fullSubtrip()
	s.Expenses = []models.Expense{{ExpenseType: "diesel", Amount: 11000, DieselLtr: 130}}
	s.EndKm = s.StartKm + s.Route.Distance // keep distance on target

	got := GenerateInsights(s)
	if len(got) == 0 {
		t.Fatalf("expected at least a fuel insight")
	}
	fuel := got[0]
	if fuel.Type != InsightFuelOveruse {
		t.Fatalf("first insight type = %q, want %q", fuel.Type, InsightFuelOveruse)
	}
	for _, want := range []string{"30", "100", "130"} {
		if !strings.Contains(fuel.Message, want) {
			t.Fatalf("fuel message %q should contain %q", fuel.Message, want)
		}
	}
}

func TestGenerateInsightsOnTargetEmitsNothing(t *testing.T) {
	s := fullSubtrip()
	s.EndKm = s.StartKm + s.Route.Distance
	if got := GenerateInsights(s); len(got) != 0 {
		t.Fatalf("on-target subtrip should produce no insights, got %v", got)
	}
}

func TestGenerateInsightsEmitsAtMostFour(t *testing.T) {
	s := fullSubtrip()
	s.Expenses = []models.Expense{
		{ExpenseType: "diesel", Amount: 12000, DieselLtr: 140},
		{ExpenseType: "diesel", Amount: 900, DieselLtr: 10},
		{ExpenseType: "toll", Amount: 950},
		{ExpenseType: "driver-salary", Amount: 1000},
	}
	s.EndKm = 700

	got := GenerateInsights(s)
	if len(got) > 4 {
		t.Fatalf("never more than 4 insights, got %d", len(got))
	}
	if len(got) != 4 {
		t.Fatalf("all four dimensions deviate, want 4 insights, got %d", len(got))
	}
	wantOrder := []string{InsightFuelOveruse, InsightTollOverrun, InsightSalaryUnderrun, InsightDistanceOverrun}
	for i, w := range wantOrder {
		if got[i].Type != w {
			t.Fatalf("insight %d type = %q, want %q", i, got[i].Type, w)
		}
	}
}

func TestGenerateInsightsUnderuse(t *testing.T) {
	s := fullSubtrip()
	s.Expenses = []models.Expense{{ExpenseType: "diesel", Amount: 7000, DieselLtr: 80}}
	s.EndKm = s.StartKm + s.Route.Distance

	got := GenerateInsights(s)
	var fuel *Insight
	for i := range got {
		if got[i].Type == InsightFuelUnderuse {
			fuel = &got[i]
		}
	}
	if fuel == nil {
		t.Fatalf("expected a fuel-underuse insight, got %v", got)
	}
	for _, want := range []string{"80", "100", "20"} {
		if !strings.Contains(fuel.Message, want) {
			t.Fatalf("message %q should contain %q", fuel.Message, want)
		}
	}
}

func TestGenerateInsightsVehicleTypeFallback(t *testing.T) {
	s := fullSubtrip()
	s.Trip.Vehicle = &models.Vehicle{VehicleType: "unknown-type"}
	s.Expenses = []models.Expense{{ExpenseType: "diesel", Amount: 900, DieselLtr: 10}}
	s.EndKm = s.StartKm // zero distance

	// Per-vehicle expectations fall back to zero; toll and distance still
	// compare against the route record itself.
	got := GenerateInsights(s)
	wantOrder := []string{InsightFuelOveruse, InsightTollUnderrun, InsightDistanceUnderrun}
	if len(got) != len(wantOrder) {
		t.Fatalf("want %d insights, got %d: %v", len(wantOrder), len(got), got)
	}
	for i, w := range wantOrder {
		if got[i].Type != w {
			t.Fatalf("insight %d type = %q, want %q", i, got[i].Type, w)
		}
	}
}

func TestGenerateInsightsPure(t *testing.T) {
	s := fullSubtrip()
	s.EndKm = 700
	first := GenerateInsights(s)
	second := GenerateInsights(s)
	if len(first) != len(second) {
		t.Fatalf("repeat call changed insight count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeat call changed insight %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
