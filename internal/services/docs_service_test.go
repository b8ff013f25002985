package services

import (
	"testing"

	"fleetops/internal/domain/models"
	"fleetops/internal/finance"
)

func TestDocsServiceGenerateLorryReceipt(t *testing.T) {
	loader := func(id int64) (models.Subtrip, error) {
		return models.Subtrip{
			ID: id, RouteCode: "DEL-JPR", StartDate: "2025-03-01",
			LoadingPoint: "Delhi", UnloadingPoint: "Jaipur", Material: "Cement",
			LoadingWeight: 10, UnloadingWeight: 9.8, Rate: 1000,
			Trip: &models.Trip{Vehicle: &models.Vehicle{VehicleNo: "RJ14 GA 1234"}},
		}, nil
	}

	svc := DocsService{SubtripLoader: loader}
	pdf, filename, err := svc.GenerateLorryReceipt(1)
	if err != nil {
		t.Fatalf("GenerateLorryReceipt returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateLorryReceipt returned empty data")
	}
}

func TestDocsServiceGenerateInvoicePDF(t *testing.T) {
	inv := models.Invoice{
		ID: 3, InvoiceNo: "INV-3", CreatedDate: "2025-03-10",
		Customer: &models.Customer{Name: "Acme Mills", GSTNo: "08AAACA1234A1Z5"},
		InvoicedSubtrips: []models.Subtrip{
			{ID: 1, RouteCode: "DEL-JPR", LoadingWeight: 10, Rate: 1000},
		},
	}
	view := InvoiceView{
		Invoice: inv,
		Lines:   []finance.InvoiceLine{finance.ComputeInvoiceLine(inv.InvoicedSubtrips[0])},
		Summary: finance.SummarizeInvoice(inv, 9),
	}

	svc := DocsService{}
	pdf, filename, err := svc.GenerateInvoicePDF(view)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateInvoicePDF returned empty data")
	}
}

func TestDocsServiceGenerateVouchers(t *testing.T) {
	payroll := PayrollView{
		Payroll: models.DriverPayroll{
			ID: 2, PayrollNo: "PAY-2",
			Driver:   &models.Driver{Name: "Ram Singh", BankName: "SBI", AccountNo: "1234"},
			Subtrips: []models.Subtrip{{ID: 1}},
		},
		Summary: finance.SalarySummary{TotalTripWiseIncome: 1000, NetIncome: 1000},
	}
	svc := DocsService{}

	pdf, filename, err := svc.GeneratePayrollVoucher(payroll)
	if err != nil {
		t.Fatalf("GeneratePayrollVoucher returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GeneratePayrollVoucher returned empty data")
	}

	payment := PaymentView{
		Payment: models.TransporterPayment{
			ID: 4, PaymentNo: "TP-4",
			Transporter: &models.Transporter{Name: "Sharma Transport", TDSPercentage: 2},
		},
		Summary:     finance.PaymentSummary{TotalTripWiseIncome: 9500, NetIncome: 9500},
		TDSPercent:  2,
		NetAfterTDS: finance.NetAfterTDS(9500, 2),
	}
	pdf, filename, err = svc.GeneratePaymentVoucher(payment)
	if err != nil {
		t.Fatalf("GeneratePaymentVoucher returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GeneratePaymentVoucher returned empty data")
	}
}
