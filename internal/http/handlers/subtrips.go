package handlers

import (
	"net/http"
	"strings"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/services"

	"github.com/gin-gonic/gin"
)

func subtripFilterFromQuery(c *gin.Context) repositories.SubtripFilter {
	return repositories.SubtripFilter{
		DriverID:      queryInt64(c, "driverId"),
		TransporterID: queryInt64(c, "transporterId"),
		CustomerID:    queryInt64(c, "customerId"),
		VehicleID:     queryInt64(c, "vehicleId"),
		Status:        c.Query("status"),
		StartDate:     c.Query("startDate"),
		EndDate:       c.Query("endDate"),
	}
}

// GET /api/subtrips
func GetSubtrips(c *gin.Context) {
	subtrips, err := repositories.SubtripRepository{}.List(subtripFilterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, subtrips)
}

// GET /api/subtrips/:id
func GetSubtripByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	subtrip, err := repositories.SubtripRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, subtrip)
}

// POST /api/subtrips
func CreateSubtrip(c *gin.Context) {
	var input models.Subtrip
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.TripID <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "tripId", Msg: "required"})
		return
	}
	if input.Status == "" {
		input.Status = domain.StatusInQueue
	}

	id, err := repositories.SubtripRepository{}.Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/subtrips/:id
func UpdateSubtrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.Subtrip
	if !BindJSONOrError(c, &input) {
		return
	}
	input.ID = id

	if err := (repositories.SubtripRepository{}).Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

var allowedSubtripStatuses = map[domain.Status]bool{
	domain.StatusInQueue:    true,
	domain.StatusLoaded:     true,
	domain.StatusReceived:   true,
	domain.StatusError:      true,
	domain.StatusClosed:     true,
	domain.StatusBilled:     true,
	domain.StatusBilledPaid: true,
}

// PATCH /api/subtrips/:id/status
func UpdateSubtripStatus(c *gin.Context) {
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
	if !allowedSubtripStatuses[status] {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status"})
		return
	}

	if err := (repositories.SubtripRepository{}).UpdateStatus(id, status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}

// DELETE /api/subtrips/:id
func DeleteSubtrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := (repositories.SubtripRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subtrip deleted"})
}

// POST /api/subtrips/:id/expenses
func AddSubtripExpense(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input models.Expense
	if !BindJSONOrError(c, &input) {
		return
	}
	input.SubtripID = id
	if strings.TrimSpace(input.ExpenseType) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "expenseType", Msg: "required"})
		return
	}

	expenseID, err := repositories.SubtripRepository{}.AddExpense(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	input.ID = expenseID
	c.JSON(http.StatusCreated, input)
}

// DELETE /api/subtrips/expenses/:id
func DeleteSubtripExpense(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := (repositories.SubtripRepository{}).DeleteExpense(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}

// GET /api/subtrips/:id/insights
func GetSubtripInsights(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	svc := services.InsightsService{SubtripRepo: repositories.SubtripRepository{}}
	insights, err := svc.ForSubtrip(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subtripId": id, "insights": insights})
}

// GET /api/subtrips/:id/lorry-receipt
func GetSubtripLorryReceipt(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		SubtripRepo: repositories.SubtripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateLorryReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
