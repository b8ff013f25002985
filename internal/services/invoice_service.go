package services

import (
	"fmt"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/finance"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"
)

// InvoiceService raises customer invoices from billed subtrips.
type InvoiceService struct {
	InvoiceRepo repositories.InvoiceRepository
	SubtripRepo repositories.SubtripRepository
	RequestID   string
}

// InvoiceView is an invoice document plus its per-line amounts and summary.
type InvoiceView struct {
	Invoice models.Invoice         `json:"invoice"`
	Lines   []finance.InvoiceLine  `json:"lines"`
	Summary finance.InvoiceSummary `json:"summary"`
}

func invoiceView(inv models.Invoice, taxPercent float64) InvoiceView {
	lines := make([]finance.InvoiceLine, 0, len(inv.InvoicedSubtrips))
	for _, s := range inv.InvoicedSubtrips {
		lines = append(lines, finance.ComputeInvoiceLine(s))
	}
	return InvoiceView{
		Invoice: inv,
		Lines:   lines,
		Summary: finance.SummarizeInvoice(inv, taxPercent),
	}
}

// Raise snapshots the given subtrips into a new invoice for the customer.
func (s InvoiceService) Raise(customerID int64, subtripIDs []int64, createdDate, dueDate string, rates finance.Rates) (InvoiceView, error) {
	if customerID <= 0 {
		return InvoiceView{}, domain.ValidationError{Field: "customerId", Msg: "required"}
	}
	if len(subtripIDs) == 0 {
		return InvoiceView{}, domain.ValidationError{Field: "subtripIds", Msg: "at least one subtrip required"}
	}

	inv := models.Invoice{
		CustomerID:  customerID,
		Status:      domain.StatusBilled,
		CreatedDate: createdDate,
		DueDate:     dueDate,
	}
	for _, id := range subtripIDs {
		st, err := s.SubtripRepo.GetByID(id)
		if err != nil {
			return InvoiceView{}, err
		}
		inv.InvoicedSubtrips = append(inv.InvoicedSubtrips, st)
	}

	id, err := s.InvoiceRepo.Create(inv)
	if err != nil {
		return InvoiceView{}, err
	}
	inv.ID = id
	inv.InvoiceNo = fmt.Sprintf("INV-%d", id)

	utils.LogEvent(s.RequestID, "invoice", "raise",
		fmt.Sprintf("customer_id=%d subtrips=%d", customerID, len(inv.InvoicedSubtrips)))
	return invoiceView(inv, rates.InvoiceTaxPercent), nil
}

// Get loads a stored invoice and recomputes its summary with the tenant tax.
func (s InvoiceService) Get(id int64, rates finance.Rates) (InvoiceView, error) {
	inv, err := s.InvoiceRepo.GetByID(id)
	if err != nil {
		return InvoiceView{}, err
	}
	return invoiceView(inv, rates.InvoiceTaxPercent), nil
}
