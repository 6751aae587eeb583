package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
)

type TimesheetJobs struct {
	attendanceRepo attendance.AttendanceRepository
	blockerRepo    blocker.BlockerRepository
}

func NewTimesheetJobs(attendanceRepo attendance.AttendanceRepository, blockerRepo blocker.BlockerRepository) *TimesheetJobs {
	return &TimesheetJobs{
		attendanceRepo: attendanceRepo,
		blockerRepo:    blockerRepo,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_not_updated_attendances", 1*time.Hour, j.MarkNotUpdatedAttendances)
	scheduler.AddJob("purge_expired_blockers", 24*time.Hour, j.PurgeExpiredBlockers)
}

// MarkNotUpdatedAttendances closes out past days that were saved with a
// login but never got a logout, so they stop rendering as open sessions.
func (j *TimesheetJobs) MarkNotUpdatedAttendances(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark not-updated attendances job")

	cutoff := time.Now().UTC().Truncate(24 * time.Hour)
	count, err := j.attendanceRepo.MarkNotUpdated(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to mark not-updated attendances: %w", err)
	}

	slog.Info("Cron: Marked not-updated attendances", "count", count)
	return nil
}

// PurgeExpiredBlockers removes blockers whose range ended more than a
// year ago. Old blockers never affect edit decisions again once the
// month lock has passed them.
func (j *TimesheetJobs) PurgeExpiredBlockers(ctx context.Context) error {
	cutoff := time.Now().UTC().AddDate(-1, 0, 0)
	count, err := j.blockerRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge expired blockers: %w", err)
	}
	if count > 0 {
		slog.Info("Cron: Purged expired blockers", "count", count)
	}
	return nil
}
