package timesheet

import (
	"strings"
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
)

// Blocked-reason labels, in gate priority order.
const (
	ReasonMonthLocked        = "Editing for this month is closed"
	ReasonRestrictedActivity = "Locked by a recorded leave/WFH half-day"
)

// EditPolicy decides whether a given date may still be edited. Three
// independent conditions are OR'd: the rolling month lock (bypassed by
// admin and manager roles), manual admin blockers (never bypassed), and
// restricted half-day activity on the existing record (non-privileged
// roles only).
type EditPolicy struct {
	// EditableMonths is how many months before the current one remain
	// editable for non-privileged roles. 0 locks everything but the
	// current month.
	EditableMonths int
}

// DefaultEditPolicy matches the legacy behavior: current month plus the
// previous one.
var DefaultEditPolicy = EditPolicy{EditableMonths: 1}

// IsEditableMonth reports whether d falls inside the rolling editable
// window ending at now's month. Future months are outside the window.
func (p EditPolicy) IsEditableMonth(d, now time.Time) bool {
	dm := d.Year()*12 + int(d.Month()) - 1
	nm := now.Year()*12 + int(now.Month()) - 1
	return dm <= nm && nm-dm <= p.EditableMonths
}

// IsDateBlocked reports whether date may not be edited by the given role.
// rec may be nil when no record exists for the date.
func (p EditPolicy) IsDateBlocked(date, now time.Time, role user.Role, rec *attendance.Attendance, blockers []blocker.Blocker) bool {
	return p.BlockedReason(date, now, role, rec, blockers) != ""
}

// BlockedReason returns the human-readable cause for a locked date, or ""
// when the date is editable. Causes are checked in a fixed priority order:
// month lock, then manual blockers, then restricted activity.
func (p EditPolicy) BlockedReason(date, now time.Time, role user.Role, rec *attendance.Attendance, blockers []blocker.Blocker) string {
	if !role.IsPrivileged() && !p.IsEditableMonth(date, now) {
		return ReasonMonthLocked
	}

	// Manual blockers are not role-gated: admins set them for everyone,
	// themselves included.
	for _, b := range blockers {
		if b.Covers(date) {
			if b.Reason != "" {
				return b.Reason
			}
			return "Blocked by admin"
		}
	}

	if !role.IsPrivileged() && hasRestrictedActivity(rec) {
		return ReasonRestrictedActivity
	}

	return ""
}

// hasRestrictedActivity reports whether either half-day slot records an
// activity other than office work. Once a leave or WFH half-day is saved
// the day locks for self-service edits.
func hasRestrictedActivity(rec *attendance.Attendance) bool {
	if rec == nil {
		return false
	}
	return isRestricted(rec.FirstHalf) || isRestricted(rec.SecondHalf)
}

func isRestricted(slot *string) bool {
	if slot == nil {
		return false
	}
	v := strings.TrimSpace(strings.ToLower(*slot))
	return v != "" && v != "office"
}
