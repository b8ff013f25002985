package handlers

import (
	"net/http"

	"fleetops/internal/domain"
	"fleetops/internal/finance"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/settings/rates
func GetRateSettings(c *gin.Context) {
	rates, err := repositories.SettingsRepository{}.GetRates(rateDefaults)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

// PUT /api/settings/rates
func UpdateRateSettings(c *gin.Context) {
	var input finance.Rates
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.InvoiceTaxPercent < 0 || input.InvoiceTaxPercent > 100 {
		RespondDomainError(c, domain.ValidationError{Field: "invoiceTaxPercent", Msg: "must be between 0 and 100"})
		return
	}
	if input.DefaultTDSPercent < 0 || input.DefaultTDSPercent > 100 {
		RespondDomainError(c, domain.ValidationError{Field: "defaultTdsPercent", Msg: "must be between 0 and 100"})
		return
	}
	if input.TransporterCommissionRate < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "transporterCommissionRate", Msg: "must not be negative"})
		return
	}

	if err := (repositories.SettingsRepository{}).UpdateRates(input); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "settings", "update_rates", "tenant rates updated")
	c.JSON(http.StatusOK, input)
}
