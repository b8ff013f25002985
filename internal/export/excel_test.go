package export

import (
	"testing"

	"fleetops/internal/domain/models"
)

func TestSubtripRowsShape(t *testing.T) {
	subtrips := []models.Subtrip{
		{
			ID: 1, RouteCode: "DEL-JPR", StartDate: "2025-03-01",
			LoadingWeight: 10, UnloadingWeight: 9.8, Rate: 1000,
			StartKm: 100, EndKm: 550,
			Trip: &models.Trip{Vehicle: &models.Vehicle{VehicleNo: "RJ14 GA 1234"}},
			Expenses: []models.Expense{
				{ExpenseType: "diesel", Amount: 9000, DieselLtr: 100},
				{ExpenseType: "driver-salary", Amount: 1200},
			},
		},
		{ID: 2, LoadingWeight: 5, Rate: 800},
	}

	rows := SubtripRows(subtrips)
	if len(rows) != 3 {
		t.Fatalf("want 2 data rows + TOTAL, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != len(SubtripColumns) {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), len(SubtripColumns))
		}
	}
	if rows[0][1] != "RJ14 GA 1234" {
		t.Fatalf("vehicle cell = %v", rows[0][1])
	}
	if rows[1][1] != "-" {
		t.Fatalf("missing vehicle should degrade to '-', got %v", rows[1][1])
	}
	if rows[2][0] != "TOTAL" {
		t.Fatalf("last row should be TOTAL, got %v", rows[2][0])
	}
}

func TestSubtripRowsTotalsFromRawValues(t *testing.T) {
	subtrips := []models.Subtrip{
		{ID: 1, LoadingWeight: 10, Rate: 1000},
		{ID: 2, LoadingWeight: 7.5, Rate: 840},
	}
	rows := SubtripRows(subtrips)
	total := rows[len(rows)-1]

	if total[4] != 17.5 {
		t.Fatalf("loading weight total = %v, want 17.5", total[4])
	}
	if total[7] != 10000.0+6300.0 {
		t.Fatalf("freight total = %v, want 16300", total[7])
	}
	if total[6] != "" {
		t.Fatalf("rate column has no total, got %v", total[6])
	}
}

func TestSubtripRowsEmptyInput(t *testing.T) {
	rows := SubtripRows(nil)
	if len(rows) != 1 {
		t.Fatalf("empty input should still yield the TOTAL row, got %d rows", len(rows))
	}
	if rows[0][0] != "TOTAL" {
		t.Fatalf("lone row should be TOTAL, got %v", rows[0][0])
	}
}

func TestWriteWorkbook(t *testing.T) {
	rows := SubtripRows([]models.Subtrip{{ID: 1, LoadingWeight: 10, Rate: 1000}})
	data, err := WriteWorkbook("Subtrips", SubtripColumns, rows)
	if err != nil {
		t.Fatalf("WriteWorkbook returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("WriteWorkbook returned empty file")
	}
}
