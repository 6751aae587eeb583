package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/employee"
	"github.com/tracklab/timesheet-backend-go/internal/domain/report"
	"github.com/tracklab/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/excel"
)

type ReportServiceImpl struct {
	timesheetService timesheet.TimesheetService
	employeeRepo     employee.EmployeeRepository
}

func NewReportService(timesheetService timesheet.TimesheetService, employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		timesheetService: timesheetService,
		employeeRepo:     employeeRepo,
	}
}

// MonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, employeeID string, month, year int) (report.Report, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return s.RangeReport(ctx, employeeID, start, start.AddDate(0, 1, -1))
}

// RangeReport implements report.ReportService. The range may cross month
// boundaries; each calendar month becomes its own sheet.
func (s *ReportServiceImpl) RangeReport(ctx context.Context, employeeID string, start, end time.Time) (report.Report, error) {
	if end.Before(start) {
		return report.Report{}, fmt.Errorf("report range end precedes start")
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.Report{}, err
	}

	var sections []excel.MonthSection
	for anchor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !anchor.After(end); anchor = anchor.AddDate(0, 1, 0) {
		monthStart := anchor
		if monthStart.Before(start) {
			monthStart = start
		}
		monthEnd := anchor.AddDate(0, 1, -1)
		if monthEnd.After(end) {
			monthEnd = end
		}

		entries, err := s.timesheetService.RangeTimesheet(ctx, employeeID, monthStart, monthEnd)
		if err != nil {
			return report.Report{}, err
		}

		sections = append(sections, excel.MonthSection{
			Title:   anchor.Format("Jan 2006"),
			Anchor:  anchor,
			Entries: entries,
		})
	}

	buf, err := excel.BuildAttendanceReport(emp.FullName, sections)
	if err != nil {
		return report.Report{}, err
	}

	filename := fmt.Sprintf("attendance-%s-%s-%s.xlsx",
		emp.EmployeeCode, start.Format("20060102"), end.Format("20060102"))

	return report.Report{Filename: filename, Content: buf}, nil
}
