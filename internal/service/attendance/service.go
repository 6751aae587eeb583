package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
	"github.com/tracklab/timesheet-backend-go/internal/domain/manager"
	"github.com/tracklab/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	blocker.BlockerRepository
	manager.MappingRepository
	editPolicy timesheet.EditPolicy
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	blockerRepo blocker.BlockerRepository,
	mappingRepo manager.MappingRepository,
	editPolicy timesheet.EditPolicy,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		BlockerRepository:    blockerRepo,
		MappingRepository:    mappingRepo,
		editPolicy:           editPolicy,
	}
}

// caller extracts the calling user's identity from the verified token.
func caller(ctx context.Context) (employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if v, ok := claims["employee_id"].(string); ok {
		employeeID = v
	}
	if v, ok := claims["role"].(string); ok {
		role = user.Role(v)
	}
	return employeeID, role, nil
}

// canModify reports whether the caller may write the target employee's
// attendance: themselves, any admin, or a manager the employee is mapped to.
func (a *AttendanceServiceImpl) canModify(ctx context.Context, callerEmployeeID string, role user.Role, targetEmployeeID string) (bool, error) {
	if callerEmployeeID == targetEmployeeID {
		return true, nil
	}
	if role == user.RoleAdmin {
		return true, nil
	}
	if role == user.RoleManager {
		return a.MappingRepository.Exists(ctx, callerEmployeeID, targetEmployeeID)
	}
	return false, nil
}

// checkEditable runs the edit-eligibility gate for one date.
func (a *AttendanceServiceImpl) checkEditable(ctx context.Context, employeeID string, date time.Time, role user.Role, existing *attendance.Attendance) error {
	blockers, err := a.BlockerRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to list blockers: %w", err)
	}
	if reason := a.editPolicy.BlockedReason(date, time.Now().UTC(), role, existing, blockers); reason != "" {
		return attendance.ErrDateNotEditable
	}
	return nil
}

// deriveStatus picks the stored status token for a record being saved. An
// explicit status from the request wins; otherwise the clocks decide.
func deriveStatus(explicit *string, login, logout *string) string {
	if explicit != nil && *explicit != "" {
		return *explicit
	}
	in := ""
	out := ""
	if login != nil {
		in = *login
	}
	if logout != nil {
		out = *logout
	}
	if total := timesheet.CalculateTotal(in, out); total != timesheet.TotalSentinel {
		var h, m int
		fmt.Sscanf(total, "%d:%d", &h, &m)
		if h*60+m >= 6*60 {
			return "FullDay"
		}
		return "HalfDay"
	}
	return "Pending"
}

// deriveTotalHours computes the persisted decimal hours when both clocks
// are present and parseable; otherwise the explicit request value is kept.
func deriveTotalHours(explicit *float64, login, logout *string) *float64 {
	if login != nil && logout != nil {
		in, errIn := timesheet.ParseClock(*login)
		out, errOut := timesheet.ParseClock(*logout)
		if errIn == nil && errOut == nil && out >= in {
			hours := float64(out-in) / 60.0
			return &hours
		}
	}
	return explicit
}

// MonthlyDetails implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyDetails(ctx context.Context, employeeID string, month, year int) ([]attendance.AttendanceResponse, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	records, err := a.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// MonthlyDetailsAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyDetailsAll(ctx context.Context, month, year int) ([]attendance.AttendanceResponse, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	records, err := a.AttendanceRepository.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// Create implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	callerID, role, err := caller(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	allowed, err := a.canModify(ctx, callerID, role, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !allowed {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	workingDate, _ := time.Parse("2006-01-02", req.WorkingDate)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, workingDate)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateDate
	}

	if err := a.checkEditable(ctx, req.EmployeeID, workingDate, role, nil); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec := attendance.Attendance{
		EmployeeID:  req.EmployeeID,
		WorkingDate: workingDate,
		LoginTime:   req.LoginTime,
		LogoutTime:  req.LogoutTime,
		Location:    req.Location,
		FirstHalf:   req.FirstHalf,
		SecondHalf:  req.SecondHalf,
		TotalHours:  deriveTotalHours(req.TotalHours, req.LoginTime, req.LogoutTime),
		Status:      deriveStatus(req.Status, req.LoginTime, req.LogoutTime),
	}

	created, err := a.AttendanceRepository.Create(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// Update implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	callerID, role, err := caller(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	allowed, err := a.canModify(ctx, callerID, role, rec.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !allowed {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	if err := a.checkEditable(ctx, rec.EmployeeID, rec.WorkingDate, role, &rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.LoginTime != nil {
		rec.LoginTime = req.LoginTime
	}
	if req.LogoutTime != nil {
		rec.LogoutTime = req.LogoutTime
	}
	if req.Location != nil {
		rec.Location = req.Location
	}
	if req.FirstHalf != nil {
		rec.FirstHalf = req.FirstHalf
	}
	if req.SecondHalf != nil {
		rec.SecondHalf = req.SecondHalf
	}
	rec.TotalHours = deriveTotalHours(req.TotalHours, rec.LoginTime, rec.LogoutTime)
	rec.Status = deriveStatus(req.Status, rec.LoginTime, rec.LogoutTime)

	if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(rec), nil
}

// SetLogoutTime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SetLogoutTime(ctx context.Context, employeeID string, req attendance.LogoutRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	callerID, role, err := caller(ctx)
	if err != nil {
		return err
	}

	allowed, err := a.canModify(ctx, callerID, role, employeeID)
	if err != nil {
		return err
	}
	if !allowed {
		return attendance.ErrUnauthorized
	}

	workingDate, _ := time.Parse("2006-01-02", req.WorkingDate)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, workingDate)
	if err != nil {
		return err
	}
	if existing == nil {
		return attendance.ErrAttendanceNotFound
	}

	if err := a.checkEditable(ctx, employeeID, workingDate, role, existing); err != nil {
		return err
	}

	if err := a.AttendanceRepository.SetLogoutTime(ctx, employeeID, workingDate, req.LogoutTime); err != nil {
		return err
	}

	// Logout closes the day: refresh the derived columns too.
	existing.LogoutTime = &req.LogoutTime
	existing.TotalHours = deriveTotalHours(existing.TotalHours, existing.LoginTime, existing.LogoutTime)
	existing.Status = deriveStatus(nil, existing.LoginTime, existing.LogoutTime)
	return a.AttendanceRepository.Update(ctx, *existing)
}

// BulkUpsert implements attendance.AttendanceService. Entries are applied
// one at a time; a failing entry is reported and skipped, never aborting
// the rest of the batch.
func (a *AttendanceServiceImpl) BulkUpsert(ctx context.Context, employeeID string, entries []attendance.BulkEntry) (attendance.BulkSaveResult, error) {
	callerID, role, err := caller(ctx)
	if err != nil {
		return attendance.BulkSaveResult{}, err
	}

	allowed, err := a.canModify(ctx, callerID, role, employeeID)
	if err != nil {
		return attendance.BulkSaveResult{}, err
	}
	if !allowed {
		return attendance.BulkSaveResult{}, attendance.ErrUnauthorized
	}

	result := attendance.BulkSaveResult{}
	for _, entry := range entries {
		if err := a.upsertOne(ctx, employeeID, role, entry); err != nil {
			result.FailedDates = append(result.FailedDates, entry.WorkingDate)
			continue
		}
		result.SavedCount++
	}

	if len(result.FailedDates) > 0 {
		result.Message = "Some records failed to save"
	} else {
		result.Message = "All records saved"
	}

	return result, nil
}

func (a *AttendanceServiceImpl) upsertOne(ctx context.Context, employeeID string, role user.Role, entry attendance.BulkEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	workingDate, _ := time.Parse("2006-01-02", entry.WorkingDate)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, workingDate)
	if err != nil {
		return err
	}

	if err := a.checkEditable(ctx, employeeID, workingDate, role, existing); err != nil {
		return err
	}

	if existing == nil {
		rec := attendance.Attendance{
			EmployeeID:  employeeID,
			WorkingDate: workingDate,
			LoginTime:   entry.LoginTime,
			LogoutTime:  entry.LogoutTime,
			Location:    entry.Location,
			FirstHalf:   entry.FirstHalf,
			SecondHalf:  entry.SecondHalf,
			TotalHours:  deriveTotalHours(entry.TotalHours, entry.LoginTime, entry.LogoutTime),
			Status:      deriveStatus(entry.Status, entry.LoginTime, entry.LogoutTime),
		}
		_, err := a.AttendanceRepository.Create(ctx, rec)
		return err
	}

	if entry.LoginTime != nil {
		existing.LoginTime = entry.LoginTime
	}
	if entry.LogoutTime != nil {
		existing.LogoutTime = entry.LogoutTime
	}
	if entry.Location != nil {
		existing.Location = entry.Location
	}
	if entry.FirstHalf != nil {
		existing.FirstHalf = entry.FirstHalf
	}
	if entry.SecondHalf != nil {
		existing.SecondHalf = entry.SecondHalf
	}
	existing.TotalHours = deriveTotalHours(entry.TotalHours, existing.LoginTime, existing.LogoutTime)
	existing.Status = deriveStatus(entry.Status, existing.LoginTime, existing.LogoutTime)

	return a.AttendanceRepository.Update(ctx, *existing)
}

func toResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		WorkingDate:  rec.WorkingDate.Format("2006-01-02"),
		LoginTime:    rec.LoginTime,
		LogoutTime:   rec.LogoutTime,
		Location:     rec.Location,
		FirstHalf:    rec.FirstHalf,
		SecondHalf:   rec.SecondHalf,
		TotalHours:   rec.TotalHours,
		Status:       rec.Status,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    rec.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, toResponse(rec))
	}
	return result
}
