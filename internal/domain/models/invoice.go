package models

import "fleetops/internal/domain"

// Invoice bills a customer for a set of subtrip snapshots. Tax and net totals
// are derived on read, never stored.
type Invoice struct {
	ID          int64         `json:"id"`
	InvoiceNo   string        `json:"invoiceNo"`
	CustomerID  int64         `json:"customerId"`
	Customer    *Customer     `json:"customer,omitempty"`
	Status      domain.Status `json:"status,omitempty"`
	CreatedDate string        `json:"createdDate,omitempty"`
	DueDate     string        `json:"dueDate,omitempty"`

	// InvoicedSubtrips are snapshots taken when the invoice was raised, so a
	// later subtrip edit cannot change an issued invoice.
	InvoicedSubtrips []Subtrip `json:"invoicedSubtrips,omitempty"`
}
