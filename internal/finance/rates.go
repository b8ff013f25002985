// Package finance holds the pure aggregation functions behind driver payroll,
// transporter payments, customer invoices and route-deviation insights.
//
// Every function here is synchronous and side-effect free: it reads
// already-fetched documents and returns raw (unrounded) numbers. Currency
// rounding and formatting happen only in the presentation layers (handlers,
// PDF, Excel) so that subtotals never accumulate rounding error.
package finance

// Rates carries the tenant-scoped percentages and offsets the aggregators
// need. Callers load it from tenant settings and pass it explicitly; the
// engine never reads process-global configuration.
type Rates struct {
	// TransporterCommissionRate is subtracted from the freight rate per tonne
	// before the transporter side is computed. A non-zero CommissionRate on
	// the subtrip itself wins over this value.
	TransporterCommissionRate float64 `json:"transporterCommissionRate"`

	// InvoiceTaxPercent is the CGST percentage; SGST is charged at the same
	// value, so an invoice carries 2*InvoiceTaxPercent total tax.
	InvoiceTaxPercent float64 `json:"invoiceTaxPercent"`

	// DefaultTDSPercent applies when a transporter record has no TDS
	// percentage of its own.
	DefaultTDSPercent float64 `json:"defaultTdsPercent"`
}

// NetAfterTDS withholds tdsPercent from a net payable. Presentation-time
// only; period summaries stay gross of TDS.
func NetAfterTDS(net, tdsPercent float64) float64 {
	return net * (1 - tdsPercent/100)
}
