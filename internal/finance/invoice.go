package finance

import "fleetops/internal/domain/models"

// InvoiceLine bills the customer for one subtrip. Billing runs on loading
// weight (the customer pays for what was loaded), unlike the transporter side
// which settles on unloading weight net of shrink.
type InvoiceLine struct {
	FreightAmount  float64 `json:"freightAmount"`
	ShortageAmount float64 `json:"shortageAmount"`
	TotalAmount    float64 `json:"totalAmount"`
}

// InvoiceSummary totals one invoice across its subtrip snapshots.
type InvoiceSummary struct {
	TotalFreightWt       float64 `json:"totalFreightWt"`
	TotalShortageWt      float64 `json:"totalShortageWt"`
	TotalShortageAmount  float64 `json:"totalShortageAmount"`
	TotalFreightAmount   float64 `json:"totalFreightAmount"`
	TotalAmountBeforeTax float64 `json:"totalAmountBeforeTax"`
	CGST                 float64 `json:"cgst"`
	SGST                 float64 `json:"sgst"`
	TotalAfterTax        float64 `json:"totalAfterTax"`
}

// ComputeInvoiceLine derives one subtrip's billable amounts.
func ComputeInvoiceLine(s models.Subtrip) InvoiceLine {
	var line InvoiceLine
	line.FreightAmount = s.Rate * s.LoadingWeight
	line.ShortageAmount = s.ShortageAmount
	line.TotalAmount = line.FreightAmount - line.ShortageAmount
	return line
}

// SummarizeInvoice totals an invoice and applies GST as two equal halves
// (CGST and SGST, each at taxPercent). An invoice with no subtrips returns
// all-zero totals.
func SummarizeInvoice(inv models.Invoice, taxPercent float64) InvoiceSummary {
	subtrips := normalizeSubtrips(inv.InvoicedSubtrips)

	var out InvoiceSummary
	for _, s := range subtrips {
		line := ComputeInvoiceLine(s)
		out.TotalFreightWt += s.LoadingWeight
		out.TotalShortageWt += s.ShortageWeight
		out.TotalShortageAmount += line.ShortageAmount
		out.TotalFreightAmount += line.FreightAmount
	}
	out.TotalAmountBeforeTax = out.TotalFreightAmount - out.TotalShortageAmount
	out.CGST = out.TotalAmountBeforeTax * taxPercent / 100
	out.SGST = out.TotalAmountBeforeTax * taxPercent / 100
	out.TotalAfterTax = out.TotalAmountBeforeTax * (1 + 2*taxPercent/100)
	return out
}
