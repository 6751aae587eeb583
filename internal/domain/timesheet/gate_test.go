package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
)

func TestIsEditableMonth(t *testing.T) {
	policy := DefaultEditPolicy
	now := day(2024, time.May, 15)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"current month", day(2024, time.May, 1), true},
		{"previous month", day(2024, time.April, 30), true},
		{"two months back", day(2024, time.March, 31), false},
		{"next month", day(2024, time.June, 1), false},
		{"previous year same month", day(2023, time.May, 15), false},
		{"year boundary", day(2023, time.December, 31), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, policy.IsEditableMonth(c.date, now))
		})
	}
}

func TestIsEditableMonthYearBoundary(t *testing.T) {
	policy := DefaultEditPolicy
	now := day(2025, time.January, 10)

	assert.True(t, policy.IsEditableMonth(day(2024, time.December, 31), now))
	assert.False(t, policy.IsEditableMonth(day(2024, time.November, 30), now))
}

func TestBlockedReasonMonthLock(t *testing.T) {
	policy := DefaultEditPolicy
	now := day(2024, time.May, 15)
	old := day(2024, time.February, 10)

	assert.Equal(t, ReasonMonthLocked, policy.BlockedReason(old, now, user.RoleEmployee, nil, nil))

	// Admins and managers bypass the month lock.
	assert.Empty(t, policy.BlockedReason(old, now, user.RoleAdmin, nil, nil))
	assert.Empty(t, policy.BlockedReason(old, now, user.RoleManager, nil, nil))
}

func TestBlockedReasonManualBlocker(t *testing.T) {
	policy := DefaultEditPolicy
	now := day(2024, time.May, 15)
	blockers := []blocker.Blocker{
		{
			EmployeeID:  "emp-1",
			BlockedFrom: day(2024, time.May, 10),
			BlockedTo:   day(2024, time.May, 12),
			Reason:      "Audit window",
		},
	}

	// Inclusive on both ends.
	assert.Equal(t, "Audit window", policy.BlockedReason(day(2024, time.May, 10), now, user.RoleEmployee, nil, blockers))
	assert.Equal(t, "Audit window", policy.BlockedReason(day(2024, time.May, 12), now, user.RoleEmployee, nil, blockers))
	assert.Empty(t, policy.BlockedReason(day(2024, time.May, 9), now, user.RoleEmployee, nil, blockers))
	assert.Empty(t, policy.BlockedReason(day(2024, time.May, 13), now, user.RoleEmployee, nil, blockers))

	// Blockers are not role-gated: admins hit them too.
	assert.Equal(t, "Audit window", policy.BlockedReason(day(2024, time.May, 11), now, user.RoleAdmin, nil, blockers))

	// A blocker without a reason still blocks, with a fallback label.
	unnamed := []blocker.Blocker{{BlockedFrom: day(2024, time.May, 11), BlockedTo: day(2024, time.May, 11)}}
	assert.Equal(t, "Blocked by admin", policy.BlockedReason(day(2024, time.May, 11), now, user.RoleEmployee, nil, unnamed))
}

func TestBlockedReasonRestrictedActivity(t *testing.T) {
	policy := DefaultEditPolicy
	now := day(2024, time.May, 15)
	date := day(2024, time.May, 10)

	cases := []struct {
		name    string
		rec     *attendance.Attendance
		blocked bool
	}{
		{"nil record", nil, false},
		{"office both halves", &attendance.Attendance{FirstHalf: strPtr("Office"), SecondHalf: strPtr("office")}, false},
		{"leave first half", &attendance.Attendance{FirstHalf: strPtr("Leave")}, true},
		{"wfh second half", &attendance.Attendance{SecondHalf: strPtr("WFH")}, true},
		{"empty slots", &attendance.Attendance{FirstHalf: strPtr(""), SecondHalf: strPtr("  ")}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			reason := policy.BlockedReason(date, now, user.RoleEmployee, c.rec, nil)
			if c.blocked {
				assert.Equal(t, ReasonRestrictedActivity, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}

	// Privileged roles are exempt from the restricted-activity lock.
	rec := &attendance.Attendance{FirstHalf: strPtr("Leave")}
	assert.Empty(t, policy.BlockedReason(date, now, user.RoleAdmin, rec, nil))
}

func TestBlockedReasonPriorityOrder(t *testing.T) {
	policy := DefaultEditPolicy
	now := day(2024, time.May, 15)
	old := day(2024, time.February, 10)
	blockers := []blocker.Blocker{
		{BlockedFrom: day(2024, time.February, 1), BlockedTo: day(2024, time.February, 28), Reason: "Payroll freeze"},
	}
	rec := &attendance.Attendance{FirstHalf: strPtr("Leave")}

	// Month lock outranks the blocker for employees.
	assert.Equal(t, ReasonMonthLocked, policy.BlockedReason(old, now, user.RoleEmployee, rec, blockers))

	// For admins the month lock is bypassed, so the blocker reason shows.
	assert.Equal(t, "Payroll freeze", policy.BlockedReason(old, now, user.RoleAdmin, rec, blockers))
}

func TestIsDateBlocked(t *testing.T) {
	policy := DefaultEditPolicy
	now := day(2024, time.May, 15)

	assert.True(t, policy.IsDateBlocked(day(2024, time.January, 10), now, user.RoleEmployee, nil, nil))
	assert.False(t, policy.IsDateBlocked(day(2024, time.May, 10), now, user.RoleEmployee, nil, nil))
}
