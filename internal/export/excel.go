// Package export flattens subtrip collections into spreadsheet rows for the
// back-office Excel download.
package export

import (
	"bytes"
	"fmt"

	"fleetops/internal/domain/models"
	"fleetops/internal/finance"
	"fleetops/internal/utils"

	"github.com/xuri/excelize/v2"
)

// SubtripColumns is the fixed column order of the subtrip export.
var SubtripColumns = []string{
	"Subtrip ID",
	"Vehicle No",
	"Route",
	"Start Date",
	"Loading Wt (MT)",
	"Unloading Wt (MT)",
	"Rate",
	"Freight Amount",
	"Diesel (Ltr)",
	"Diesel Amount",
	"Toll Amount",
	"Driver Salary",
	"Total Expense",
	"Distance (KM)",
}

// SubtripRows flattens subtrips into export rows and appends a synthetic
// TOTAL row. Numeric totals are recomputed from the raw documents, not from
// already-formatted cells, so the sum never double-rounds. Missing nested
// fields degrade to "-" or 0, never an error.
func SubtripRows(subtrips []models.Subtrip) [][]any {
	rows := make([][]any, 0, len(subtrips)+1)

	type totals struct {
		loadingWt, unloadingWt, freight, dieselLtr, dieselAmt, toll, salary, expense, distance float64
	}
	var sum totals

	for _, s := range subtrips {
		vehicleNo := "-"
		if s.Trip != nil && s.Trip.Vehicle != nil {
			vehicleNo = utils.Placeholder(s.Trip.Vehicle.VehicleNo)
		}
		route := utils.Placeholder(s.RouteCode)
		if s.Route != nil {
			route = utils.Placeholder(s.Route.FromPlace + " - " + s.Route.ToPlace)
		}

		var dieselLtr, dieselAmt, toll, expense float64
		for _, e := range s.Expenses {
			expense += e.Amount
			if finance.Classify(e, finance.CategoryDiesel) {
				dieselLtr += e.DieselLtr
				dieselAmt += e.Amount
			}
			if finance.Classify(e, finance.CategoryToll) {
				toll += e.Amount
			}
		}
		salary := finance.SalaryForSubtrip(s)
		freight := s.Rate * s.LoadingWeight
		distance := s.EndKm - s.StartKm

		rows = append(rows, []any{
			fmt.Sprintf("ST-%d", s.ID),
			vehicleNo,
			route,
			utils.Placeholder(utils.DisplayDate(s.StartDate)),
			s.LoadingWeight,
			s.UnloadingWeight,
			s.Rate,
			freight,
			dieselLtr,
			dieselAmt,
			toll,
			salary,
			expense,
			distance,
		})

		sum.loadingWt += s.LoadingWeight
		sum.unloadingWt += s.UnloadingWeight
		sum.freight += freight
		sum.dieselLtr += dieselLtr
		sum.dieselAmt += dieselAmt
		sum.toll += toll
		sum.salary += salary
		sum.expense += expense
		sum.distance += distance
	}

	rows = append(rows, []any{
		"TOTAL", "", "", "",
		sum.loadingWt,
		sum.unloadingWt,
		"", // rate has no meaningful sum
		sum.freight,
		sum.dieselLtr,
		sum.dieselAmt,
		sum.toll,
		sum.salary,
		sum.expense,
		sum.distance,
	})
	return rows
}

// WriteWorkbook renders header + rows into a single-sheet .xlsx workbook.
func WriteWorkbook(sheet string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheet)

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
