package services

import (
	"fleetops/internal/domain/models"
	"fleetops/internal/export"
	"fleetops/internal/repositories"
)

// ReportsService feeds the subtrip report screen and its Excel download.
type ReportsService struct {
	SubtripRepo repositories.SubtripRepository
}

// ListSubtrips returns filtered subtrips for the report table.
func (s ReportsService) ListSubtrips(f repositories.SubtripFilter) ([]models.Subtrip, error) {
	return s.SubtripRepo.List(f)
}

// ExportSubtrips renders the filtered subtrips as an .xlsx workbook.
func (s ReportsService) ExportSubtrips(f repositories.SubtripFilter) ([]byte, string, error) {
	subtrips, err := s.SubtripRepo.List(f)
	if err != nil {
		return nil, "", err
	}
	rows := export.SubtripRows(subtrips)
	data, err := export.WriteWorkbook("Subtrips", export.SubtripColumns, rows)
	if err != nil {
		return nil, "", err
	}
	return data, "subtrips.xlsx", nil
}
