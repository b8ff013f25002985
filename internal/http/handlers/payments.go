package handlers

import (
	"net/http"

	"fleetops/internal/domain/models"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"

	"github.com/gin-gonic/gin"
)

func transporterService(c *gin.Context) services.TransporterService {
	return services.TransporterService{
		PaymentRepo: repositories.PaymentRepository{},
		SubtripRepo: repositories.SubtripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

type paymentRequest struct {
	TransporterID int64              `json:"transporterId"`
	PeriodStart   string             `json:"periodStart"`
	PeriodEnd     string             `json:"periodEnd"`
	Repayments    []models.Repayment `json:"repayments"`
}

// POST /api/transporter-payments/draft
func DraftTransporterPayment(c *gin.Context) {
	var req paymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	view, err := transporterService(c).Draft(req.TransporterID, req.PeriodStart, req.PeriodEnd, req.Repayments, currentRates(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/transporter-payments
func SubmitTransporterPayment(c *gin.Context) {
	var req paymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	view, err := transporterService(c).Submit(req.TransporterID, req.PeriodStart, req.PeriodEnd, req.Repayments, currentRates(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /api/transporter-payments
func GetTransporterPayments(c *gin.Context) {
	payments, err := repositories.PaymentRepository{}.List(queryInt64(c, "transporterId"), c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /api/transporter-payments/:id
func GetTransporterPaymentByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	view, err := transporterService(c).Get(id, currentRates(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/transporter-payments/:id
func DeleteTransporterPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := (repositories.PaymentRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}

// GET /api/transporter-payments/:id/voucher
func GetTransporterPaymentVoucher(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	view, err := transporterService(c).Get(id, currentRates(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := docs.GeneratePaymentVoucher(view)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
