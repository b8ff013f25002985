package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// Seed values for tenant rates when the settings table is empty.
	DefaultCommissionRate float64
	DefaultTaxPercent     float64
	DefaultTDSPercent     float64
}

func LoadEnv() Env {
	env := Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "fleetops"),
		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		DefaultCommissionRate: getenvFloat("COMMISSION_RATE", 0),
		DefaultTaxPercent:     getenvFloat("INVOICE_TAX_PERCENT", 9),
		DefaultTDSPercent:     getenvFloat("TDS_PERCENT", 1),
	}
	return env
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getenvFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
