package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// ReportService exports the alert log for the officer dashboard.
type ReportService struct {
	store *store.Store
}

// NewReportService creates a new report service.
func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// AlertReportXLSX renders every alert in the store as an Excel workbook.
func (s *ReportService) AlertReportXLSX(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Alerts"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"ID", "Tourist ID", "Type", "Title", "Description", "Severity", "Lat", "Lng", "Timestamp", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, a := range s.store.ListAlerts(ctx) {
		status := "Active"
		if a.Resolved {
			status = "Resolved"
		}
		values := []interface{}{
			a.ID, a.TouristID, string(a.Type), a.Title, a.Description,
			string(a.Severity), a.Location.Lat, a.Location.Lng,
			a.Timestamp.Format("2006-01-02 15:04:05"), status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
