package report

import (
	"bytes"
	"context"
	"time"
)

// Report is a rendered attendance workbook ready to stream to the client.
type Report struct {
	Filename string
	Content  *bytes.Buffer
}

// ReportService renders attendance exports. The range form joins several
// month sheets in one workbook; the monthly form is a single sheet.
type ReportService interface {
	MonthlyReport(ctx context.Context, employeeID string, month, year int) (Report, error)
	RangeReport(ctx context.Context, employeeID string, start, end time.Time) (Report, error)
}
