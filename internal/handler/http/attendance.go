package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	MonthlyDetails(w http.ResponseWriter, r *http.Request)
	MonthlyDetailsAll(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetLogoutTime(w http.ResponseWriter, r *http.Request)
	BulkUpsert(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// monthYearParams parses the {month}/{year} URL segments.
func monthYearParams(r *http.Request) (month, year int, ok bool) {
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, false
	}
	return month, year, true
}

// MonthlyDetails implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyDetails(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month, year, ok := monthYearParams(r)
	if !ok {
		response.BadRequest(w, "month must be 1-12 and year a four-digit year", nil)
		return
	}

	records, err := h.attendanceService.MonthlyDetails(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// MonthlyDetailsAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyDetailsAll(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(r)
	if !ok {
		response.BadRequest(w, "month must be 1-12 and year a four-digit year", nil)
		return
	}

	records, err := h.attendanceService.MonthlyDetailsAll(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance saved", created)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", updated)
}

// SetLogoutTime implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetLogoutTime(w http.ResponseWriter, r *http.Request) {
	var req attendance.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if err := h.attendanceService.SetLogoutTime(r.Context(), employeeID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logout time saved", nil)
}

// BulkUpsert implements AttendanceHandler.
func (h *attendanceHandlerImpl) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	var entries []attendance.BulkEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(entries) == 0 {
		response.BadRequest(w, "No entries to save", nil)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	result, err := h.attendanceService.BulkUpsert(r.Context(), employeeID, entries)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
