package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, working_date, login_time, logout_time,
	   location, first_half, second_half, total_hours, status, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.WorkingDate, &att.LoginTime, &att.LogoutTime,
		&att.Location, &att.FirstHalf, &att.SecondHalf, &att.TotalHours, &att.Status,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, working_date, login_time, logout_time,
			location, first_half, second_half, total_hours, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.WorkingDate,
		newAttendance.LoginTime,
		newAttendance.LogoutTime,
		newAttendance.Location,
		newAttendance.FirstHalf,
		newAttendance.SecondHalf,
		newAttendance.TotalHours,
		newAttendance.Status,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND working_date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET login_time = $1,
			logout_time = $2,
			location = $3,
			first_half = $4,
			second_half = $5,
			total_hours = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		att.LoginTime,
		att.LogoutTime,
		att.Location,
		att.FirstHalf,
		att.SecondHalf,
		att.TotalHours,
		att.Status,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// SetLogoutTime implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetLogoutTime(ctx context.Context, employeeID string, workingDate time.Time, logoutTime string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET logout_time = $1, updated_at = NOW()
		WHERE employee_id = $2
		  AND working_date = $3
	`

	tag, err := q.Exec(ctx, query, logoutTime, employeeID, workingDate)
	if err != nil {
		return fmt.Errorf("failed to set logout time: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND working_date BETWEEN $2 AND $3
		ORDER BY working_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

// ListByRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.working_date, a.login_time, a.logout_time,
			   a.location, a.first_half, a.second_half, a.total_hours, a.status,
			   a.created_at, a.updated_at, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.working_date BETWEEN $1 AND $2
		ORDER BY e.full_name, a.working_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by range: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.WorkingDate, &att.LoginTime, &att.LogoutTime,
			&att.Location, &att.FirstHalf, &att.SecondHalf, &att.TotalHours, &att.Status,
			&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	return result, rows.Err()
}

// MarkNotUpdated implements attendance.AttendanceRepository.
func (a *attendanceRepository) MarkNotUpdated(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = 'NotUpdated', updated_at = NOW()
		WHERE working_date < $1
		  AND login_time IS NOT NULL
		  AND (logout_time IS NULL OR logout_time = '')
		  AND status NOT IN ('NotUpdated', 'Leave')
	`

	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to mark not-updated attendances: %w", err)
	}

	return tag.RowsAffected(), nil
}
