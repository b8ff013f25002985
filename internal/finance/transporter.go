package finance

import "fleetops/internal/domain/models"

// TransporterLine is the per-subtrip settlement of an external vehicle owner.
// The transporter is paid on delivered (unloading) weight, net of commission
// and of every expense the company fronted for the leg.
type TransporterLine struct {
	EffectiveFreightRate    float64 `json:"effectiveFreightRate"`
	TotalFreightAmount      float64 `json:"totalFreightAmount"`
	TotalExpense            float64 `json:"totalExpense"`
	TotalTransporterPayment float64 `json:"totalTransporterPayment"`
}

// PaymentSummary rolls a billing period up across its associated subtrips.
// NetIncome stays gross of TDS; callers apply NetAfterTDS at presentation.
type PaymentSummary struct {
	TotalTripWiseIncome float64 `json:"totalTripWiseIncome"`
	TotalShortageAmount float64 `json:"totalShortageAmount"`
	TotalRepayments     float64 `json:"totalRepayments"`
	NetIncome           float64 `json:"netIncome"`
}

// commissionFor picks the per-subtrip override when set, else the tenant rate.
func commissionFor(s models.Subtrip, r Rates) float64 {
	if s.CommissionRate != 0 {
		return s.CommissionRate
	}
	return r.TransporterCommissionRate
}

// ComputeTransporterLine derives one subtrip's transporter settlement.
func ComputeTransporterLine(s models.Subtrip, r Rates) TransporterLine {
	s = normalizeSubtrip(s)

	var line TransporterLine
	line.EffectiveFreightRate = s.Rate - commissionFor(s, r)
	line.TotalFreightAmount = line.EffectiveFreightRate * s.UnloadingWeight
	for _, e := range s.Expenses {
		line.TotalExpense += e.Amount
	}
	line.TotalTransporterPayment = line.TotalFreightAmount - line.TotalExpense
	return line
}

// SummarizeTransporterPayment aggregates a payment period: trip-wise income
// minus shortages minus advances already repaid.
func SummarizeTransporterPayment(p models.TransporterPayment, r Rates) PaymentSummary {
	subtrips := normalizeSubtrips(p.AssociatedSubtrips)
	repayments := normalizeRepayments(p.Repayments)

	var out PaymentSummary
	for _, s := range subtrips {
		out.TotalTripWiseIncome += ComputeTransporterLine(s, r).TotalTransporterPayment
		out.TotalShortageAmount += s.ShortageAmount
	}
	for _, rep := range repayments {
		out.TotalRepayments += rep.Amount
	}
	out.NetIncome = out.TotalTripWiseIncome - out.TotalShortageAmount - out.TotalRepayments
	return out
}
