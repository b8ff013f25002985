package services

import (
	"bytes"
	"fmt"
	"strings"

	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the print artifacts of the back office: lorry receipts,
// tax invoices and payment vouchers. Loaders are injectable for tests.
type DocsService struct {
	SubtripRepo repositories.SubtripRepository
	RequestID   string

	SubtripLoader func(id int64) (models.Subtrip, error)
	InvoiceLoader func(id int64) (InvoiceView, error)
	PayrollLoader func(id int64) (PayrollView, error)
	PaymentLoader func(id int64) (PaymentView, error)
}

// GenerateLorryReceipt builds the LR document for one subtrip.
func (s DocsService) GenerateLorryReceipt(subtripID int64) ([]byte, string, error) {
	load := s.SubtripLoader
	if load == nil {
		load = s.SubtripRepo.GetByID
	}
	subtrip, err := load(subtripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_lr", fmt.Sprintf("subtrip_id=%d", subtripID))
	return buildLorryReceiptPDF(subtrip)
}

// GenerateInvoicePDF builds the printable tax invoice.
func (s DocsService) GenerateInvoicePDF(view InvoiceView) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("invoice_id=%d", view.Invoice.ID))
	return buildInvoicePDF(view)
}

// GeneratePayrollVoucher builds the driver payment voucher.
func (s DocsService) GeneratePayrollVoucher(view PayrollView) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_payroll_voucher", fmt.Sprintf("payroll_id=%d", view.Payroll.ID))
	return buildPayrollVoucherPDF(view)
}

// GeneratePaymentVoucher builds the transporter payment voucher.
func (s DocsService) GeneratePaymentVoucher(view PaymentView) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_payment_voucher", fmt.Sprintf("payment_id=%d", view.Payment.ID))
	return buildPaymentVoucherPDF(view)
}

func buildLorryReceiptPDF(s models.Subtrip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lorry Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "LORRY RECEIPT")
	pdf.Ln(12)

	vehicleNo := "-"
	if s.Trip != nil && s.Trip.Vehicle != nil {
		vehicleNo = safe(s.Trip.Vehicle.VehicleNo, "-")
	}
	route := safe(s.RouteCode, "-")
	if s.Route != nil {
		route = safe(s.Route.FromPlace+" -> "+s.Route.ToPlace, "-")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("LR No          : LR-%d", s.ID),
		fmt.Sprintf("Date           : %s", safe(utils.DisplayDate(s.StartDate), "-")),
		fmt.Sprintf("Vehicle        : %s", vehicleNo),
		fmt.Sprintf("Route          : %s", route),
		fmt.Sprintf("Material       : %s", safe(s.Material, "-")),
		fmt.Sprintf("E-Way Bill     : %s", safe(s.EwayBill, "-")),
		fmt.Sprintf("Loading Point  : %s", safe(s.LoadingPoint, "-")),
		fmt.Sprintf("Unloading Point: %s", safe(s.UnloadingPoint, "-")),
		fmt.Sprintf("Loading Wt     : %.2f MT", s.LoadingWeight),
		fmt.Sprintf("Unloading Wt   : %.2f MT", s.UnloadingWeight),
		fmt.Sprintf("Rate           : %s / MT", utils.FormatINR(s.Rate)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Goods received in apparent good condition. Subject to terms of carriage printed overleaf.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("LR_%d_%s.pdf", s.ID, safeFilenamePart(vehicleNo))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(view InvoiceView) ([]byte, string, error) {
	inv := view.Invoice
	sum := view.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tax Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TAX INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+safe(inv.InvoiceNo, fmt.Sprintf("INV-%d", inv.ID)))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+safe(utils.DisplayDate(inv.CreatedDate), "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Due Date   : "+safe(utils.DisplayDate(inv.DueDate), "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	if inv.Customer != nil {
		pdf.Cell(0, 7, safe(inv.Customer.Name, "-"))
		pdf.Ln(7)
		pdf.Cell(0, 7, safe(inv.Customer.Address, "-"))
		pdf.Ln(7)
		pdf.Cell(0, 7, "GSTIN: "+safe(inv.Customer.GSTNo, "-"))
		pdf.Ln(10)
	} else {
		pdf.Cell(0, 7, "-")
		pdf.Ln(10)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 7, "LR No", "1", 0, "", false, 0, "")
	pdf.CellFormat(50, 7, "Route", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 7, "Wt (MT)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Rate", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Shortage", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for i, st := range inv.InvoicedSubtrips {
		line := view.Lines[i]
		pdf.CellFormat(30, 7, fmt.Sprintf("LR-%d", st.ID), "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 7, safe(st.RouteCode, "-"), "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", st.LoadingWeight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, utils.FormatMoney(st.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, utils.FormatMoney(line.ShortageAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, utils.FormatMoney(line.TotalAmount), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Taxable Amount : "+utils.FormatINR(sum.TotalAmountBeforeTax))
	pdf.Ln(7)
	pdf.Cell(0, 7, "CGST           : "+utils.FormatINR(sum.CGST))
	pdf.Ln(7)
	pdf.Cell(0, 7, "SGST           : "+utils.FormatINR(sum.SGST))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Grand Total    : "+utils.FormatINR(sum.TotalAfterTax))
	pdf.Ln(10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%d.pdf", inv.ID)
	return buf.Bytes(), filename, nil
}

func buildPayrollVoucherPDF(view PayrollView) ([]byte, string, error) {
	p := view.Payroll
	sum := view.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Driver Payment Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DRIVER PAYMENT VOUCHER")
	pdf.Ln(12)

	driverName, bankLine := "-", "-"
	if p.Driver != nil {
		driverName = safe(p.Driver.Name, "-")
		bankLine = strings.TrimSpace(safe(p.Driver.BankName, "") + " " + safe(p.Driver.AccountNo, ""))
		if bankLine == "" {
			bankLine = "-"
		}
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Voucher No : %s", safe(p.PayrollNo, fmt.Sprintf("PAY-%d", p.ID))),
		fmt.Sprintf("Driver     : %s", driverName),
		fmt.Sprintf("Bank       : %s", bankLine),
		fmt.Sprintf("Period     : %s to %s", safe(utils.DisplayDate(p.PeriodStart), "-"), safe(utils.DisplayDate(p.PeriodEnd), "-")),
		fmt.Sprintf("Subtrips   : %d", len(p.Subtrips)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.Cell(0, 7, "Trip-wise Salary      : "+utils.FormatINR(sum.TotalTripWiseIncome))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Additional Payments   : "+utils.FormatINR(sum.TotalAdditionalPayments))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Deductions            : "+utils.FormatINR(sum.TotalDeductions))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Net Payable           : "+utils.FormatINR(sum.NetIncome))
	pdf.Ln(10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("PAYROLL_%d_%s.pdf", p.ID, safeFilenamePart(driverName))
	return buf.Bytes(), filename, nil
}

func buildPaymentVoucherPDF(view PaymentView) ([]byte, string, error) {
	p := view.Payment
	sum := view.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Transporter Payment Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRANSPORTER PAYMENT VOUCHER")
	pdf.Ln(12)

	name := "-"
	if p.Transporter != nil {
		name = safe(p.Transporter.Name, "-")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Voucher No  : %s", safe(p.PaymentNo, fmt.Sprintf("TP-%d", p.ID))),
		fmt.Sprintf("Transporter : %s", name),
		fmt.Sprintf("Period      : %s to %s", safe(utils.DisplayDate(p.PeriodStart), "-"), safe(utils.DisplayDate(p.PeriodEnd), "-")),
		fmt.Sprintf("Subtrips    : %d", len(p.AssociatedSubtrips)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.Cell(0, 7, "Trip-wise Income  : "+utils.FormatINR(sum.TotalTripWiseIncome))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Shortage          : "+utils.FormatINR(sum.TotalShortageAmount))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Repayments        : "+utils.FormatINR(sum.TotalRepayments))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Net Income        : "+utils.FormatINR(sum.NetIncome))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("TDS @ %.2f%%", view.TDSPercent))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Net Payable       : "+utils.FormatINR(view.NetAfterTDS))
	pdf.Ln(10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("TP_%d_%s.pdf", p.ID, safeFilenamePart(name))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
