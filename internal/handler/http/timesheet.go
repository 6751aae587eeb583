package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tracklab/timesheet-backend-go/internal/domain/report"
	"github.com/tracklab/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklab/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/tracklab/timesheet-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	reportService    report.ReportService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, reportService report.ReportService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
		reportService:    reportService,
	}
}

// Monthly implements TimesheetHandler: the dense derived calendar for one
// month.
func (h *timesheetHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month, year, ok := monthYearParams(r)
	if !ok {
		response.BadRequest(w, "month must be 1-12 and year a four-digit year", nil)
		return
	}

	entries, err := h.timesheetService.MonthlyTimesheet(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// monthYearQuery parses ?month&year.
func monthYearQuery(r *http.Request) (month, year int, ok bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, false
	}
	return month, year, true
}

// rangeParams parses ?start=YYYY-MM-DD&end=YYYY-MM-DD.
func rangeParams(r *http.Request) (start, end time.Time, ok bool) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Range implements TimesheetHandler: derived entries over an arbitrary
// inclusive date range, used by boundary-crossing exports.
func (h *timesheetHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start, end, ok := rangeParams(r)
	if !ok {
		response.BadRequest(w, "start and end must be YYYY-MM-DD with start <= end", nil)
		return
	}

	entries, err := h.timesheetService.RangeTimesheet(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// DownloadReport implements TimesheetHandler: streams the xlsx workbook.
// Accepts either ?month&year for a single month or ?start&end for a range.
// Without ?employeeId the caller downloads their own report.
func (h *timesheetHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		claims, err := middleware.ClaimsFromContext(r.Context())
		if err != nil || claims.EmployeeID == "" {
			response.BadRequest(w, "employeeId is required", nil)
			return
		}
		employeeID = claims.EmployeeID
	}

	var (
		rep report.Report
		err error
	)

	if r.URL.Query().Get("start") != "" || r.URL.Query().Get("end") != "" {
		start, end, ok := rangeParams(r)
		if !ok {
			response.BadRequest(w, "start and end must be YYYY-MM-DD with start <= end", nil)
			return
		}
		rep, err = h.reportService.RangeReport(r.Context(), employeeID, start, end)
	} else {
		month, year, ok := monthYearQuery(r)
		if !ok {
			response.BadRequest(w, "month must be 1-12 and year a four-digit year", nil)
			return
		}
		rep, err = h.reportService.MonthlyReport(r.Context(), employeeID, month, year)
	}

	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rep.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = rep.Content.WriteTo(w)
}
