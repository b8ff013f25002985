package repositories

import (
	"testing"

	"fleetops/internal/finance"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetRatesFallsBackToDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM tenant_settings").
		WillReturnRows(sqlmock.NewRows([]string{"transporter_commission_rate", "invoice_tax_percent", "default_tds_percent"}))

	defaults := finance.Rates{TransporterCommissionRate: 50, InvoiceTaxPercent: 9, DefaultTDSPercent: 1}
	rates, err := SettingsRepository{DB: db}.GetRates(defaults)
	if err != nil {
		t.Fatalf("GetRates error: %v", err)
	}
	if rates != defaults {
		t.Fatalf("missing settings row should fall back to defaults, got %+v", rates)
	}
}

func TestGetRatesReadsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM tenant_settings").
		WillReturnRows(sqlmock.NewRows([]string{"transporter_commission_rate", "invoice_tax_percent", "default_tds_percent"}).
			AddRow(75.0, 6.0, 2.0))

	rates, err := SettingsRepository{DB: db}.GetRates(finance.Rates{})
	if err != nil {
		t.Fatalf("GetRates error: %v", err)
	}
	if rates.TransporterCommissionRate != 75 || rates.InvoiceTaxPercent != 6 || rates.DefaultTDSPercent != 2 {
		t.Fatalf("rates scanned wrong: %+v", rates)
	}
}

func TestUpdateRatesInsertsWhenMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE tenant_settings").WithArgs(50.0, 9.0, 1.0).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO tenant_settings").WithArgs(50.0, 9.0, 1.0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rates := finance.Rates{TransporterCommissionRate: 50, InvoiceTaxPercent: 9, DefaultTDSPercent: 1}
	if err := (SettingsRepository{DB: db}).UpdateRates(rates); err != nil {
		t.Fatalf("UpdateRates error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
