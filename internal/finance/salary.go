package finance

import "fleetops/internal/domain/models"

// SalarySummary is the driver payroll roll-up rendered by the payroll screen
// and the payment voucher PDF.
type SalarySummary struct {
	TotalTripWiseIncome     float64 `json:"totalTripWiseIncome"`
	TotalAdditionalPayments float64 `json:"totalAdditionalPayments"`
	TotalDeductions         float64 `json:"totalDeductions"`
	NetIncome               float64 `json:"netIncome"`
}

// SalaryForSubtrip sums the driver-salary expenses booked against one
// subtrip. A subtrip without expenses yields 0.
func SalaryForSubtrip(s models.Subtrip) float64 {
	s = normalizeSubtrip(s)
	return sumCategory(s.Expenses, CategoryDriverSalary)
}

// SummarizeDriverSalary nets trip-wise salary income against ad-hoc payments
// and deductions: net = tripWise + payments - deductions.
func SummarizeDriverSalary(subtrips []models.Subtrip, payments, deductions []models.Adjustment) SalarySummary {
	subtrips = normalizeSubtrips(subtrips)
	payments = normalizeAdjustments(payments)
	deductions = normalizeAdjustments(deductions)

	var out SalarySummary
	for _, s := range subtrips {
		out.TotalTripWiseIncome += SalaryForSubtrip(s)
	}
	for _, p := range payments {
		out.TotalAdditionalPayments += p.Amount
	}
	for _, d := range deductions {
		out.TotalDeductions += d.Amount
	}
	out.NetIncome = out.TotalTripWiseIncome + out.TotalAdditionalPayments - out.TotalDeductions
	return out
}
