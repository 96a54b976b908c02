package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	v1 "staffdesk.com/staffdesk/staffdesk/v1"
	"staffdesk.com/staffdesk/utils"
)

// Reports downloads the server-rendered exports and materializes them as
// date-stamped files. No resumability, no progress reporting.
type Reports struct {
	reports ReportService
	ui      *UI
}

func NewReports(reports ReportService, ui *UI) *Reports {
	return &Reports{reports: reports, ui: ui}
}

func reportFileName(ext string) string {
	return fmt.Sprintf("employees_%s.%s", utils.TodayISO(), ext)
}

func (r *Reports) DownloadCSV(ctx context.Context, dir string) (string, error) {
	return r.download(ctx, dir, "csv", r.reports.EmployeesCSV)
}

func (r *Reports) DownloadPDF(ctx context.Context, dir string) (string, error) {
	return r.download(ctx, dir, "pdf", r.reports.EmployeesPDF)
}

func (r *Reports) download(ctx context.Context, dir, ext string, fetch func(context.Context, io.Writer) error) (string, error) {
	path := filepath.Join(dir, reportFileName(ext))

	f, err := os.Create(path)
	if err != nil {
		r.ui.fail("download "+ext+" report", err)
		return "", err
	}

	if err := fetch(ctx, f); err != nil {
		f.Close()
		os.Remove(path) // no partial files
		r.ui.fail("download "+ext+" report", err)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	r.ui.Log.Info("report downloaded", zap.String("path", path))
	return path, nil
}

// PreviewCSV parses a downloaded CSV report and returns at most limit rows
// for terminal display.
func (r *Reports) PreviewCSV(path string, limit int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := utils.ParseCSV(f)
	if err != nil {
		return nil, err
	}
	return utils.PreviewRows(records, limit), nil
}

// ExportXLSX writes the given employees (typically the current filtered
// view) to a local workbook, same date-stamped naming as the downloads.
func (r *Reports) ExportXLSX(employees []v1.EmployeeDTO, dir string) (string, error) {
	path := filepath.Join(dir, reportFileName("xlsx"))

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Name", "Email", "Salary", "Department"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, emp := range employees {
		values := []interface{}{emp.FullName, emp.Email, emp.Salary, emp.DepartmentName()}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.SaveAs(path); err != nil {
		r.ui.fail("export employees to xlsx", err)
		return "", err
	}

	r.ui.Log.Info("employee list exported", zap.String("path", path), zap.Int("rows", len(employees)))
	return path, nil
}
