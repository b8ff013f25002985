package handlers

import (
	"net/http"
	"strconv"

	intconfig "fleetops/internal/config"
	"fleetops/internal/finance"
	"fleetops/internal/http/middleware"
	"fleetops/internal/repositories"
	"fleetops/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret    = []byte("super-secret-key-change-me")
	rateDefaults finance.Rates
)

// Configure wires env-derived settings into the handler package. Called once
// from the router before any handler runs.
func Configure(env intconfig.Env) {
	jwtSecret = []byte(env.JWTSecret)
	rateDefaults = finance.Rates{
		TransporterCommissionRate: env.DefaultCommissionRate,
		InvoiceTaxPercent:         env.DefaultTaxPercent,
		DefaultTDSPercent:         env.DefaultTDSPercent,
	}
}

// JWTSecret exposes the signing key for the auth middleware.
func JWTSecret() []byte { return jwtSecret }

// currentRates reads the tenant rate settings, falling back to env defaults
// when the settings row is missing or the read fails.
func currentRates(c *gin.Context) finance.Rates {
	rates, err := repositories.SettingsRepository{}.GetRates(rateDefaults)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "settings", "read_rates", "fallback to defaults: "+err.Error())
		return rateDefaults
	}
	return rates
}

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// paramID parses the :id path segment; responds 400 and returns false on junk.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}

func queryInt64(c *gin.Context, key string) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
