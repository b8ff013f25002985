package finance

import (
	"testing"

	"fleetops/internal/domain/models"
)

func TestComputeTransporterLine(t *testing.T) {
	s := models.Subtrip{
		Rate:            1000,
		UnloadingWeight: 10,
		Expenses: []models.Expense{
			{ExpenseType: "diesel", Amount: 1500},
			{ExpenseType: "toll", Amount: 500},
		},
	}
	rates := Rates{TransporterCommissionRate: 50}

	line := ComputeTransporterLine(s, rates)
	if line.EffectiveFreightRate != 950 {
		t.Fatalf("effective freight rate = %v, want 950", line.EffectiveFreightRate)
	}
	if line.TotalFreightAmount != 9500 {
		t.Fatalf("freight amount = %v, want 9500", line.TotalFreightAmount)
	}
	if line.TotalExpense != 2000 {
		t.Fatalf("total expense = %v, want 2000", line.TotalExpense)
	}
	if line.TotalTransporterPayment != 7500 {
		t.Fatalf("transporter payment = %v, want 7500", line.TotalTransporterPayment)
	}
}

func TestComputeTransporterLineSubtripOverrideWins(t *testing.T) {
	s := models.Subtrip{Rate: 1000, UnloadingWeight: 1, CommissionRate: 80}
	line := ComputeTransporterLine(s, Rates{TransporterCommissionRate: 50})
	if line.EffectiveFreightRate != 920 {
		t.Fatalf("subtrip commission override should win, got rate %v", line.EffectiveFreightRate)
	}
}

func TestComputeTransporterLineNilExpenses(t *testing.T) {
	line := ComputeTransporterLine(models.Subtrip{Rate: 500, UnloadingWeight: 2}, Rates{})
	if line.TotalExpense != 0 {
		t.Fatalf("nil expenses should yield 0 expense, got %v", line.TotalExpense)
	}
	if line.TotalTransporterPayment != 1000 {
		t.Fatalf("payment = %v, want 1000", line.TotalTransporterPayment)
	}
}

func TestSummarizeTransporterPayment(t *testing.T) {
	p := models.TransporterPayment{
		AssociatedSubtrips: []models.Subtrip{
			{Rate: 1000, UnloadingWeight: 10, ShortageAmount: 300,
				Expenses: []models.Expense{{ExpenseType: "diesel", Amount: 2000}}},
			{Rate: 1000, UnloadingWeight: 5},
		},
		Repayments: []models.Repayment{{Label: "advance", Amount: 1000}, {Amount: 500}},
	}
	rates := Rates{TransporterCommissionRate: 50}

	got := SummarizeTransporterPayment(p, rates)
	// leg 1: 950*10 - 2000 = 7500; leg 2: 950*5 = 4750
	if got.TotalTripWiseIncome != 12250 {
		t.Fatalf("trip-wise income = %v, want 12250", got.TotalTripWiseIncome)
	}
	if got.TotalShortageAmount != 300 {
		t.Fatalf("shortage = %v, want 300", got.TotalShortageAmount)
	}
	if got.TotalRepayments != 1500 {
		t.Fatalf("repayments = %v, want 1500", got.TotalRepayments)
	}
	if got.NetIncome != 10450 {
		t.Fatalf("net income = %v, want 10450", got.NetIncome)
	}
}

func TestSummarizeTransporterPaymentEmptyPeriod(t *testing.T) {
	got := SummarizeTransporterPayment(models.TransporterPayment{}, Rates{TransporterCommissionRate: 50})
	if got.TotalTripWiseIncome != 0 || got.NetIncome != 0 || got.TotalRepayments != 0 || got.TotalShortageAmount != 0 {
		t.Fatalf("empty period should be all-zero, got %+v", got)
	}
}

func TestNetAfterTDS(t *testing.T) {
	if got := NetAfterTDS(10000, 2); got != 9800 {
		t.Fatalf("NetAfterTDS(10000, 2) = %v, want 9800", got)
	}
	if got := NetAfterTDS(10000, 0); got != 10000 {
		t.Fatalf("zero TDS should pass through, got %v", got)
	}
}

func TestTransporterAggregatorDoesNotClampNegatives(t *testing.T) {
	// Expenses exceeding freight must produce a negative payable, not zero.
	s := models.Subtrip{Rate: 100, UnloadingWeight: 1,
		Expenses: []models.Expense{{ExpenseType: "diesel", Amount: 500}}}
	line := ComputeTransporterLine(s, Rates{})
	if line.TotalTransporterPayment != -400 {
		t.Fatalf("negative payable should propagate, got %v", line.TotalTransporterPayment)
	}
}
