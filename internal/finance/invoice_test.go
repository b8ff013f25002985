package finance

import (
	"testing"

	"fleetops/internal/domain/models"
)

func TestComputeInvoiceLineUsesLoadingWeight(t *testing.T) {
	s := models.Subtrip{Rate: 1000, LoadingWeight: 10, UnloadingWeight: 9.5, ShortageAmount: 250}
	line := ComputeInvoiceLine(s)
	if line.FreightAmount != 10000 {
		t.Fatalf("freight = %v, want 10000 (billed on loading weight)", line.FreightAmount)
	}
	if line.ShortageAmount != 250 {
		t.Fatalf("shortage = %v, want 250", line.ShortageAmount)
	}
	if line.TotalAmount != 9750 {
		t.Fatalf("total = %v, want 9750", line.TotalAmount)
	}
}

func TestSummarizeInvoiceWithTax(t *testing.T) {
	inv := models.Invoice{InvoicedSubtrips: []models.Subtrip{
		{LoadingWeight: 10, Rate: 1000, ShortageAmount: 0},
	}}
	got := SummarizeInvoice(inv, 9)
	if got.TotalFreightAmount != 10000 {
		t.Fatalf("freight amount = %v, want 10000", got.TotalFreightAmount)
	}
	if got.TotalAmountBeforeTax != 10000 {
		t.Fatalf("before tax = %v, want 10000", got.TotalAmountBeforeTax)
	}
	if got.CGST != 900 || got.SGST != 900 {
		t.Fatalf("CGST/SGST = %v/%v, want 900/900", got.CGST, got.SGST)
	}
	if got.TotalAfterTax != 11800 {
		t.Fatalf("after tax = %v, want 11800", got.TotalAfterTax)
	}
}

func TestSummarizeInvoiceZeroSubtrips(t *testing.T) {
	got := SummarizeInvoice(models.Invoice{}, 9)
	if got != (InvoiceSummary{}) {
		t.Fatalf("empty invoice should return all-zero totals, got %+v", got)
	}
}

func TestInvoiceLineLinearity(t *testing.T) {
	subtrips := []models.Subtrip{
		{LoadingWeight: 10, Rate: 1000, ShortageAmount: 120},
		{LoadingWeight: 7.5, Rate: 840, ShortageAmount: 0},
		{LoadingWeight: 21, Rate: 515, ShortageAmount: 45},
	}
	var lineSum float64
	for _, s := range subtrips {
		lineSum += ComputeInvoiceLine(s).TotalAmount
	}
	got := SummarizeInvoice(models.Invoice{InvoicedSubtrips: subtrips}, 9)
	if got.TotalAmountBeforeTax != lineSum {
		t.Fatalf("summary before-tax %v must equal sum of line totals %v", got.TotalAmountBeforeTax, lineSum)
	}
}

func TestSummarizeInvoiceSumsWeights(t *testing.T) {
	inv := models.Invoice{InvoicedSubtrips: []models.Subtrip{
		{LoadingWeight: 10, ShortageWeight: 0.5, Rate: 100, ShortageAmount: 50},
		{LoadingWeight: 8, ShortageWeight: 0.25, Rate: 100, ShortageAmount: 25},
	}}
	got := SummarizeInvoice(inv, 0)
	if got.TotalFreightWt != 18 {
		t.Fatalf("freight weight = %v, want 18", got.TotalFreightWt)
	}
	if got.TotalShortageWt != 0.75 {
		t.Fatalf("shortage weight = %v, want 0.75", got.TotalShortageWt)
	}
	if got.TotalShortageAmount != 75 {
		t.Fatalf("shortage amount = %v, want 75", got.TotalShortageAmount)
	}
	if got.TotalAfterTax != got.TotalAmountBeforeTax {
		t.Fatalf("zero tax rate must leave total unchanged")
	}
}
