package timesheet

import (
	"fmt"
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/domain/holiday"
)

// Entry is one derived timesheet day. Entries are dense: generators emit
// exactly one per calendar day, whether or not a record exists. They are
// recomputed on every request and never persisted.
type Entry struct {
	Date      int       `json:"date"` // day of month, 1-based
	FullDate  time.Time `json:"-"`
	DateKey   string    `json:"fullDate"` // YYYY-MM-DD
	IsToday   bool      `json:"isToday"`
	IsWeekend bool      `json:"isWeekend"`
	IsFuture  bool      `json:"isFuture"`
	IsHoliday bool      `json:"isHoliday"`
	Status    Status    `json:"status"`

	TotalHours string `json:"totalHours"`
	LoginTime  string `json:"loginTime,omitempty"`
	LogoutTime string `json:"logoutTime,omitempty"`
	Location   string `json:"location,omitempty"`

	// IsSaved means a backend record exists for the day; IsSavedLogout
	// additionally means that record already has a logout time.
	IsSaved       bool   `json:"isSaved"`
	IsSavedLogout bool   `json:"isSavedLogout"`
	RecordID      string `json:"recordId,omitempty"`

	// Filled in by the service layer from the edit-eligibility gate.
	Editable      bool   `json:"editable"`
	BlockedReason string `json:"blockedReason,omitempty"`
}

// DayKey normalizes a timestamp to its calendar-day string. Record matching
// re-derives the key from the date components rather than comparing
// time.Time values, so records stored with stray time-of-day or zone
// offsets still match their calendar day.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// DaysInMonth returns the number of calendar days in the month containing
// anchor.
func DaysInMonth(anchor time.Time) int {
	return time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GenerateMonthlyEntries produces one Entry per calendar day of the month
// containing anchor, matching records by normalized day key and resolving
// each day's status against now. Pure: the same inputs always yield
// value-equal output.
func GenerateMonthlyEntries(anchor, now time.Time, records []attendance.Attendance, holidays []holiday.Holiday) []Entry {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(anchor.Year(), anchor.Month(), DaysInMonth(anchor), 0, 0, 0, 0, time.UTC)
	return GenerateRangeEntries(first, last, now, records, holidays)
}

// GenerateRangeEntries produces one Entry per day of the inclusive
// [start, end] range. Used directly for boundary-crossing export ranges
// (e.g. the 15th of one month to the 15th of the next).
func GenerateRangeEntries(start, end, now time.Time, records []attendance.Attendance, holidays []holiday.Holiday) []Entry {
	byDay := make(map[string]*attendance.Attendance, len(records))
	for i := range records {
		byDay[DayKey(records[i].WorkingDate)] = &records[i]
	}
	holidayNames := make(map[string]string, len(holidays))
	for _, h := range holidays {
		holidayNames[DayKey(h.Date)] = h.Name
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var entries []Entry
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := DayKey(d)
		_, isHoliday := holidayNames[key]

		e := Entry{
			Date:      d.Day(),
			FullDate:  d,
			DateKey:   key,
			IsToday:   d.Equal(today),
			IsWeekend: d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
			IsFuture:  d.After(today),
			IsHoliday: isHoliday,
		}

		rec := byDay[key]
		in := ResolveInput{
			IsToday:   e.IsToday,
			IsFuture:  e.IsFuture,
			IsWeekend: e.IsWeekend,
			IsHoliday: e.IsHoliday,
		}
		if rec != nil {
			if s, ok := ParseStoredStatus(rec.Status); ok {
				in.Stored = s
			}
			if rec.LoginTime != nil {
				in.Login = *rec.LoginTime
				e.LoginTime = *rec.LoginTime
			}
			if rec.LogoutTime != nil {
				in.Logout = *rec.LogoutTime
				e.LogoutTime = *rec.LogoutTime
			}
			if rec.Location != nil {
				e.Location = *rec.Location
			}
			e.IsSaved = rec.ID != ""
			e.IsSavedLogout = e.IsSaved && rec.LogoutTime != nil && *rec.LogoutTime != ""
			e.RecordID = rec.ID
		}

		e.Status = Resolve(in)
		e.TotalHours = entryTotal(rec)
		entries = append(entries, e)
	}
	return entries
}

// entryTotal prefers recomputing the duration from the clock strings and
// falls back to the persisted decimal hours; days with neither show the
// sentinel.
func entryTotal(rec *attendance.Attendance) string {
	if rec == nil {
		return TotalSentinel
	}
	if rec.LoginTime != nil && rec.LogoutTime != nil {
		if total := CalculateTotal(*rec.LoginTime, *rec.LogoutTime); total != TotalSentinel {
			return total
		}
	}
	if rec.TotalHours != nil {
		return FormatHours(*rec.TotalHours)
	}
	return TotalSentinel
}

// Summary aggregates a slice of entries for report footers.
type Summary struct {
	FullDays     int
	HalfDays     int
	Leaves       int
	NotUpdated   int
	Holidays     int
	TotalMinutes int
}

// Summarize counts statuses and sums worked time across entries.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Status {
		case StatusFullDay:
			s.FullDays++
		case StatusHalfDay:
			s.HalfDays++
		case StatusLeave:
			s.Leaves++
		case StatusNotUpdated:
			s.NotUpdated++
		case StatusHoliday:
			s.Holidays++
		}
		if e.TotalHours != TotalSentinel {
			var h, m int
			if _, err := fmt.Sscanf(e.TotalHours, "%d:%d", &h, &m); err == nil {
				s.TotalMinutes += h*60 + m
			}
		}
	}
	return s
}

// TotalHours renders the summed worked time as "HH:MM".
func (s Summary) TotalHours() string {
	return fmt.Sprintf("%02d:%02d", s.TotalMinutes/60, s.TotalMinutes%60)
}
