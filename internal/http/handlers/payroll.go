package handlers

import (
	"net/http"

	"fleetops/internal/domain/models"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"

	"github.com/gin-gonic/gin"
)

func payrollService(c *gin.Context) services.PayrollService {
	return services.PayrollService{
		PayrollRepo: repositories.PayrollRepository{},
		SubtripRepo: repositories.SubtripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

type payrollRequest struct {
	DriverID             int64               `json:"driverId"`
	PeriodStart          string              `json:"periodStart"`
	PeriodEnd            string              `json:"periodEnd"`
	AdditionalPayments   []models.Adjustment `json:"additionalPayments"`
	AdditionalDeductions []models.Adjustment `json:"additionalDeductions"`
}

// POST /api/payrolls/draft
func DraftPayroll(c *gin.Context) {
	var req payrollRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	view, err := payrollService(c).Draft(req.DriverID, req.PeriodStart, req.PeriodEnd,
		req.AdditionalPayments, req.AdditionalDeductions)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/payrolls
func SubmitPayroll(c *gin.Context) {
	var req payrollRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	view, err := payrollService(c).Submit(req.DriverID, req.PeriodStart, req.PeriodEnd,
		req.AdditionalPayments, req.AdditionalDeductions)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GET /api/payrolls
func GetPayrolls(c *gin.Context) {
	payrolls, err := repositories.PayrollRepository{}.List(queryInt64(c, "driverId"), c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payrolls)
}

// GET /api/payrolls/:id
func GetPayrollByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	view, err := payrollService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/payrolls/:id
func DeletePayroll(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := (repositories.PayrollRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payroll deleted"})
}

// GET /api/payrolls/:id/voucher
func GetPayrollVoucher(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	view, err := payrollService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := docs.GeneratePayrollVoucher(view)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
