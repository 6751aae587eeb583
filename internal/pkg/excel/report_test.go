package excel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklab/timesheet-backend-go/internal/domain/timesheet"
	"github.com/xuri/excelize/v2"
)

func entry(d time.Time, status timesheet.Status, total string) timesheet.Entry {
	return timesheet.Entry{
		Date:       d.Day(),
		FullDate:   d,
		DateKey:    d.Format("2006-01-02"),
		Status:     status,
		TotalHours: total,
	}
}

func TestBuildAttendanceReportSingleMonth(t *testing.T) {
	may := func(d int) time.Time { return time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC) }
	sections := []MonthSection{
		{
			Title:  "May 2024",
			Anchor: may(1),
			Entries: []timesheet.Entry{
				entry(may(1), timesheet.StatusFullDay, "08:00"),
				entry(may(2), timesheet.StatusHalfDay, "04:00"),
				entry(may(3), timesheet.StatusLeave, timesheet.TotalSentinel),
			},
		},
	}

	buf, err := BuildAttendanceReport("Jane Doe", sections)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"May 2024"}, f.GetSheetList())

	title, err := f.GetCellValue("May 2024", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Attendance Report - Jane Doe", title)

	month, err := f.GetCellValue("May 2024", "A2")
	require.NoError(t, err)
	assert.Equal(t, "May 2024", month)

	head, err := f.GetCellValue("May 2024", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Date", head)

	firstDate, err := f.GetCellValue("May 2024", "A5")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", firstDate)

	firstDay, err := f.GetCellValue("May 2024", "B5")
	require.NoError(t, err)
	assert.Equal(t, "Wednesday", firstDay)

	firstStatus, err := f.GetCellValue("May 2024", "C5")
	require.NoError(t, err)
	assert.Equal(t, "FullDay", firstStatus)

	// Month summary sits one blank row below the data (rows 5-7, summary
	// title at row 9).
	summaryTitle, err := f.GetCellValue("May 2024", "A9")
	require.NoError(t, err)
	assert.Equal(t, "Month Summary", summaryTitle)

	fullDays, err := f.GetCellValue("May 2024", "B10")
	require.NoError(t, err)
	assert.Equal(t, "1", fullDays)

	totalHours, err := f.GetCellValue("May 2024", "B15")
	require.NoError(t, err)
	assert.Equal(t, "12:00", totalHours)

	// Grand total footer follows on the same (last) sheet.
	grandTitle, err := f.GetCellValue("May 2024", "A17")
	require.NoError(t, err)
	assert.Equal(t, "Grand Total", grandTitle)
}

func TestBuildAttendanceReportMultipleMonths(t *testing.T) {
	apr := time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC)
	may := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	sections := []MonthSection{
		{
			Title:   "Apr 2024",
			Anchor:  apr,
			Entries: []timesheet.Entry{entry(apr, timesheet.StatusFullDay, "08:00")},
		},
		{
			Title:   "May 2024",
			Anchor:  may,
			Entries: []timesheet.Entry{entry(may, timesheet.StatusFullDay, "07:30")},
		},
	}

	buf, err := BuildAttendanceReport("John Roe", sections)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Apr 2024", "May 2024"}, f.GetSheetList())

	// Grand total accumulates across sheets and lands on the last one:
	// 1 data row, so footer starts at 5+1+9 = 15.
	grandTitle, err := f.GetCellValue("May 2024", "A15")
	require.NoError(t, err)
	assert.Equal(t, "Grand Total", grandTitle)

	grandFullDays, err := f.GetCellValue("May 2024", "B16")
	require.NoError(t, err)
	assert.Equal(t, "2", grandFullDays)

	grandTotal, err := f.GetCellValue("May 2024", "B21")
	require.NoError(t, err)
	assert.Equal(t, "15:30", grandTotal)

	// The first sheet keeps only its own month summary: one data row at
	// row 5, a blank row, summary title at row 7.
	aprSummary, err := f.GetCellValue("Apr 2024", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Month Summary", aprSummary)
}

func TestBuildAttendanceReportRejectsEmpty(t *testing.T) {
	_, err := BuildAttendanceReport("Jane Doe", nil)
	assert.Error(t, err)
}
