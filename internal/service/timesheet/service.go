package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
	"github.com/tracklab/timesheet-backend-go/internal/domain/holiday"
	"github.com/tracklab/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
)

type TimesheetServiceImpl struct {
	attendance.AttendanceRepository
	holiday.HolidayRepository
	blocker.BlockerRepository
	editPolicy timesheet.EditPolicy
}

func NewTimesheetService(
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	blockerRepo blocker.BlockerRepository,
	editPolicy timesheet.EditPolicy,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		AttendanceRepository: attendanceRepo,
		HolidayRepository:    holidayRepo,
		BlockerRepository:    blockerRepo,
		editPolicy:           editPolicy,
	}
}

func callerRole(ctx context.Context) user.Role {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.RoleEmployee
	}
	if v, ok := claims["role"].(string); ok {
		return user.Role(v)
	}
	return user.RoleEmployee
}

// MonthlyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) MonthlyTimesheet(ctx context.Context, employeeID string, month, year int) ([]timesheet.Entry, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return s.RangeTimesheet(ctx, employeeID, start, end)
}

// RangeTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) RangeTimesheet(ctx context.Context, employeeID string, start, end time.Time) ([]timesheet.Entry, error) {
	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}

	holidays, err := s.HolidayRepository.ListByRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	blockers, err := s.BlockerRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blockers: %w", err)
	}

	now := time.Now().UTC()
	role := callerRole(ctx)

	byDay := make(map[string]*attendance.Attendance, len(records))
	for i := range records {
		byDay[timesheet.DayKey(records[i].WorkingDate)] = &records[i]
	}

	entries := timesheet.GenerateRangeEntries(start, end, now, records, holidays)
	for i := range entries {
		rec := byDay[entries[i].DateKey]
		reason := s.editPolicy.BlockedReason(entries[i].FullDate, now, role, rec, blockers)
		entries[i].Editable = reason == ""
		entries[i].BlockedReason = reason
	}

	return entries, nil
}
