package services

import (
	"testing"

	"fleetops/internal/domain"
	"fleetops/internal/domain/models"
	"fleetops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPayrollDraftComputesSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	subtripCols := []string{
		"id", "trip_id", "route_code", "customer_id", "status",
		"loading_point", "unloading_point", "material", "eway_bill",
		"loading_weight", "unloading_weight", "rate",
		"start_km", "end_km", "shortage_weight", "shortage_amount",
		"commission_rate", "start_date", "end_date",
	}
	mock.ExpectQuery("FROM subtrips st").
		WithArgs(int64(5), "2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows(subtripCols).
			AddRow(11, 1, "DEL-JPR", 0, "closed", "", "", "", "",
				10.0, 9.8, 1000.0, 0.0, 450.0, 0.0, 0.0, 0.0, "2025-03-05", "2025-03-06"))

	expenseCols := []string{"id", "subtrip_id", "expense_type", "amount", "diesel_ltr", "paid_by", "date", "remarks"}
	mock.ExpectQuery("FROM subtrip_expenses").WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(expenseCols).
			AddRow(1, 11, "driver-salary", 1200.0, 0.0, "", "2025-03-05", "").
			AddRow(2, 11, "diesel", 9000.0, 100.0, "pump", "2025-03-05", ""))

	svc := PayrollService{
		SubtripRepo: repositories.SubtripRepository{DB: db},
	}

	view, err := svc.Draft(5, "2025-03-01", "2025-03-31",
		[]models.Adjustment{{Label: "bonus", Amount: 300}},
		[]models.Adjustment{{Label: "advance recovery", Amount: 500}})
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}

	if view.Summary.TotalTripWiseIncome != 1200 {
		t.Fatalf("trip-wise income = %v, want 1200", view.Summary.TotalTripWiseIncome)
	}
	if view.Summary.NetIncome != 1000 {
		t.Fatalf("net income = %v, want 1000", view.Summary.NetIncome)
	}
	if len(view.Payroll.Subtrips) != 1 {
		t.Fatalf("payroll should carry 1 subtrip, got %d", len(view.Payroll.Subtrips))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPayrollDraftRejectsMissingDriver(t *testing.T) {
	svc := PayrollService{}
	_, err := svc.Draft(0, "", "", nil, nil)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
