package finance

import (
	"testing"

	"fleetops/internal/domain/models"
)

func TestSalaryForSubtripPicksOnlySalaryExpenses(t *testing.T) {
	s := models.Subtrip{Expenses: []models.Expense{
		{ExpenseType: "driver-salary", Amount: 500},
		{ExpenseType: "diesel", Amount: 300},
	}}
	if got := SalaryForSubtrip(s); got != 500 {
		t.Fatalf("SalaryForSubtrip = %v, want 500", got)
	}
}

func TestSalaryForSubtripEmptyAndNilExpenses(t *testing.T) {
	if got := SalaryForSubtrip(models.Subtrip{}); got != 0 {
		t.Fatalf("nil expenses should yield 0, got %v", got)
	}
	if got := SalaryForSubtrip(models.Subtrip{Expenses: []models.Expense{}}); got != 0 {
		t.Fatalf("empty expenses should yield 0, got %v", got)
	}
}

func TestSummarizeDriverSalaryAllZero(t *testing.T) {
	got := SummarizeDriverSalary(nil, nil, nil)
	if got.TotalTripWiseIncome != 0 || got.TotalAdditionalPayments != 0 || got.TotalDeductions != 0 || got.NetIncome != 0 {
		t.Fatalf("empty payroll should be all-zero, got %+v", got)
	}
}

func TestSummarizeDriverSalaryNetsAdjustments(t *testing.T) {
	subtrips := []models.Subtrip{
		{Expenses: []models.Expense{{ExpenseType: "driver-salary", Amount: 1000}}},
	}
	payments := []models.Adjustment{{Label: "bonus", Amount: 200}}
	deductions := []models.Adjustment{{Label: "penalty", Amount: 50}}

	got := SummarizeDriverSalary(subtrips, payments, deductions)
	if got.TotalTripWiseIncome != 1000 {
		t.Fatalf("trip-wise income = %v, want 1000", got.TotalTripWiseIncome)
	}
	if got.TotalAdditionalPayments != 200 {
		t.Fatalf("additional payments = %v, want 200", got.TotalAdditionalPayments)
	}
	if got.TotalDeductions != 50 {
		t.Fatalf("deductions = %v, want 50", got.TotalDeductions)
	}
	if got.NetIncome != 1150 {
		t.Fatalf("net income = %v, want 1150", got.NetIncome)
	}
}

func TestSummarizeDriverSalaryNetIdentity(t *testing.T) {
	subtrips := []models.Subtrip{
		{Expenses: []models.Expense{
			{ExpenseType: "driver-salary", Amount: 333.33},
			{ExpenseType: "driver-salary", Amount: 166.67},
			{ExpenseType: "toll", Amount: 90},
		}},
		{Expenses: []models.Expense{{ExpenseType: "driver-salary", Amount: 721.5}}},
	}
	payments := []models.Adjustment{{Label: "diwali", Amount: 101.25}, {Label: "night halt", Amount: 75}}
	deductions := []models.Adjustment{{Label: "advance recovery", Amount: 450.5}}

	got := SummarizeDriverSalary(subtrips, payments, deductions)
	want := got.TotalTripWiseIncome + got.TotalAdditionalPayments - got.TotalDeductions
	if got.NetIncome != want {
		t.Fatalf("net income identity broken: %v != %v", got.NetIncome, want)
	}
}

func TestSummarizeDriverSalaryEmptySubtrips(t *testing.T) {
	got := SummarizeDriverSalary(nil,
		[]models.Adjustment{{Label: "bonus", Amount: 120}},
		[]models.Adjustment{{Label: "mess", Amount: 20}})
	if got.TotalTripWiseIncome != 0 {
		t.Fatalf("trip-wise income should be 0, got %v", got.TotalTripWiseIncome)
	}
	if got.NetIncome != 100 {
		t.Fatalf("net should reduce to payments minus deductions, got %v", got.NetIncome)
	}
}

func TestSummarizeDriverSalaryIdempotent(t *testing.T) {
	subtrips := []models.Subtrip{
		{Expenses: []models.Expense{{ExpenseType: "driver-salary", Amount: 480}}},
	}
	first := SummarizeDriverSalary(subtrips, nil, nil)
	second := SummarizeDriverSalary(subtrips, nil, nil)
	if first != second {
		t.Fatalf("same input must produce identical output: %+v vs %+v", first, second)
	}
}
