package repositories

import (
	"database/sql"

	intconfig "fleetops/internal/config"
	"fleetops/internal/finance"
)

// SettingsRepository serves the tenant-scoped rate configuration. The finance
// engine takes these values as an explicit argument on every call; nothing in
// the engine reads them from global state.
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetRates loads the tenant rates, falling back to env-seeded defaults when
// the settings row does not exist yet.
func (r SettingsRepository) GetRates(defaults finance.Rates) (finance.Rates, error) {
	rates := defaults
	err := r.db().QueryRow(`
		SELECT COALESCE(transporter_commission_rate,0), COALESCE(invoice_tax_percent,0),
		       COALESCE(default_tds_percent,0)
		FROM tenant_settings WHERE id=1
	`).Scan(&rates.TransporterCommissionRate, &rates.InvoiceTaxPercent, &rates.DefaultTDSPercent)
	if err == sql.ErrNoRows {
		return defaults, nil
	}
	if err != nil {
		return defaults, err
	}
	return rates, nil
}

// UpdateRates upserts the single tenant settings row.
func (r SettingsRepository) UpdateRates(rates finance.Rates) error {
	res, err := r.db().Exec(`
		UPDATE tenant_settings
		SET transporter_commission_rate=?, invoice_tax_percent=?, default_tds_percent=?
		WHERE id=1
	`, rates.TransporterCommissionRate, rates.InvoiceTaxPercent, rates.DefaultTDSPercent)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_, err = r.db().Exec(`
			INSERT INTO tenant_settings (id, transporter_commission_rate, invoice_tax_percent, default_tds_percent)
			VALUES (1,?,?,?)
		`, rates.TransporterCommissionRate, rates.InvoiceTaxPercent, rates.DefaultTDSPercent)
	}
	return err
}
