package handlers

import (
	"net/http"

	"fleetops/internal/repositories"
	"fleetops/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/subtrips
func GetSubtripReport(c *gin.Context) {
	svc := services.ReportsService{SubtripRepo: repositories.SubtripRepository{}}
	subtrips, err := svc.ListSubtrips(subtripFilterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(subtrips), "subtrips": subtrips})
}

// GET /api/reports/subtrips/export
func ExportSubtripReport(c *gin.Context) {
	svc := services.ReportsService{SubtripRepo: repositories.SubtripRepository{}}
	data, filename, err := svc.ExportSubtrips(subtripFilterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
