package handlers

import (
	"net/http"
	"strings"

	"fleetops/internal/domain"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"

	"github.com/gin-gonic/gin"
)

func invoiceService(c *gin.Context) services.InvoiceService {
	return services.InvoiceService{
		InvoiceRepo: repositories.InvoiceRepository{},
		SubtripRepo: repositories.SubtripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

type raiseInvoiceRequest struct {
	CustomerID  int64   `json:"customerId"`
	SubtripIDs  []int64 `json:"subtripIds"`
	CreatedDate string  `json:"createdDate"`
	DueDate     string  `json:"dueDate"`
}

// POST /api/invoices
func RaiseInvoice(c *gin.Context) {
	var req raiseInvoiceRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	view, err := invoiceService(c).Raise(req.CustomerID, req.SubtripIDs, req.CreatedDate, req.DueDate, currentRates(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /api/invoices
func GetInvoices(c *gin.Context) {
	invoices, err := repositories.InvoiceRepository{}.List(queryInt64(c, "customerId"), c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GET /api/invoices/:id
func GetInvoiceByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	view, err := invoiceService(c).Get(id, currentRates(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PATCH /api/invoices/:id/status
func UpdateInvoiceStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if !BindJSONOrError(c, &input) {
		return
	}

	status := domain.Status(strings.ToLower(strings.TrimSpace(input.Status)))
	if status != domain.StatusBilled && status != domain.StatusBilledPaid {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "must be billed or billed-paid"})
		return
	}

	if err := (repositories.InvoiceRepository{}).UpdateStatus(id, status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}

// DELETE /api/invoices/:id
func DeleteInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := (repositories.InvoiceRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

// GET /api/invoices/:id/pdf
func GetInvoicePDF(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	view, err := invoiceService(c).Get(id, currentRates(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := docs.GenerateInvoicePDF(view)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
