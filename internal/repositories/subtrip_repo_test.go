package repositories

import (
	"testing"

	"fleetops/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSubtripListExpenses(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "subtrip_id", "expense_type", "amount", "diesel_ltr", "paid_by", "date", "remarks"}
	mock.ExpectQuery("FROM subtrip_expenses").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 7, "diesel", 9000.0, 100.0, "", "2025-03-01", "").
			AddRow(2, 7, "driver-salary", 1200.0, 0.0, "", "2025-03-02", ""))

	repo := SubtripRepository{DB: db}
	expenses, err := repo.ListExpenses(7)
	if err != nil {
		t.Fatalf("ListExpenses error: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("want 2 expenses, got %d", len(expenses))
	}
	if expenses[0].ExpenseType != "diesel" || expenses[0].DieselLtr != 100 {
		t.Fatalf("first expense scanned wrong: %+v", expenses[0])
	}
	if expenses[1].Amount != 1200 {
		t.Fatalf("second expense amount = %v", expenses[1].Amount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubtripGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM subtrips st WHERE").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := SubtripRepository{DB: db}
	_, err = repo.GetByID(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSubtripUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE subtrips SET status").WithArgs("closed", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := SubtripRepository{DB: db}
	if err := repo.UpdateStatus(4, domain.StatusClosed); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found on zero rows affected, got %v", err)
	}
}
