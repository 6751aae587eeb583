package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/timesheet"
	"github.com/xuri/excelize/v2"
)

// MonthSection is one month of one report: the sheet name, the anchor month
// and the derived entries to render.
type MonthSection struct {
	Title   string // sheet name, e.g. "May 2024"
	Anchor  time.Time
	Entries []timesheet.Entry
}

var reportHeader = []string{"Date", "Day", "Status", "Login", "Logout", "Total Hours", "Location"}

// BuildAttendanceReport renders one xlsx workbook with a sheet per month,
// a per-month summary block and a grand-total footer on the last sheet.
func BuildAttendanceReport(employeeName string, sections []MonthSection) (*bytes.Buffer, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("report has no months")
	}

	f := excelize.NewFile()
	defer f.Close()

	var grand timesheet.Summary

	for i, section := range sections {
		sheet := section.Title
		if i == 0 {
			// excelize starts with a default sheet; rename it.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("failed to add sheet %s: %w", sheet, err)
			}
		}

		if err := f.SetCellValue(sheet, "A1", fmt.Sprintf("Attendance Report - %s", employeeName)); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, "A2", section.Anchor.Format("January 2006")); err != nil {
			return nil, err
		}

		for col, h := range reportHeader {
			cell, err := excelize.CoordinatesToCellName(col+1, 4)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return nil, err
			}
		}

		row := 5
		for _, e := range section.Entries {
			values := []interface{}{
				e.DateKey,
				e.FullDate.Weekday().String(),
				string(e.Status),
				e.LoginTime,
				e.LogoutTime,
				e.TotalHours,
				e.Location,
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}

		summary := timesheet.Summarize(section.Entries)
		grand.FullDays += summary.FullDays
		grand.HalfDays += summary.HalfDays
		grand.Leaves += summary.Leaves
		grand.NotUpdated += summary.NotUpdated
		grand.Holidays += summary.Holidays
		grand.TotalMinutes += summary.TotalMinutes

		row++
		if err := writeSummary(f, sheet, row, "Month Summary", summary); err != nil {
			return nil, err
		}
	}

	// Grand total footer goes on the last sheet, below its month summary.
	last := sections[len(sections)-1]
	footerRow := 5 + len(last.Entries) + 9
	if err := writeSummary(f, last.Title, footerRow, "Grand Total", grand); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}

func writeSummary(f *excelize.File, sheet string, row int, title string, s timesheet.Summary) error {
	lines := []struct {
		label string
		value interface{}
	}{
		{title, ""},
		{"Full Days", s.FullDays},
		{"Half Days", s.HalfDays},
		{"Leaves", s.Leaves},
		{"Not Updated", s.NotUpdated},
		{"Holidays", s.Holidays},
		{"Total Hours", s.TotalHours()},
	}
	for i, line := range lines {
		labelCell, err := excelize.CoordinatesToCellName(1, row+i)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, labelCell, line.label); err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, row+i)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCell, line.value); err != nil {
			return err
		}
	}
	return nil
}
