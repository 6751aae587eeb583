package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
	"github.com/tracklab/timesheet-backend-go/internal/domain/manager"
	"github.com/tracklab/timesheet-backend-go/internal/domain/timesheet"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
)

// In-memory fakes. The service only talks through the repository
// interfaces, so these stand in for PostgreSQL.

type fakeAttendanceRepo struct {
	byID   map[string]attendance.Attendance
	nextID int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{byID: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, d time.Time) string {
	return employeeID + "/" + d.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	a.ID = fmt.Sprintf("rec-%d", f.nextID)
	f.byID[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	a, ok := f.byID[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, a := range f.byID {
		if a.EmployeeID == employeeID && a.WorkingDate.Format("2006-01-02") == date.Format("2006-01-02") {
			copied := a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, a attendance.Attendance) error {
	if _, ok := f.byID[a.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) SetLogoutTime(_ context.Context, employeeID string, workingDate time.Time, logoutTime string) error {
	for id, a := range f.byID {
		if a.EmployeeID == employeeID && a.WorkingDate.Format("2006-01-02") == workingDate.Format("2006-01-02") {
			a.LogoutTime = &logoutTime
			f.byID[id] = a
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, a := range f.byID {
		if a.EmployeeID == employeeID && !a.WorkingDate.Before(start) && !a.WorkingDate.After(end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) ListByRange(_ context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, a := range f.byID {
		if !a.WorkingDate.Before(start) && !a.WorkingDate.After(end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAttendanceRepo) MarkNotUpdated(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeBlockerRepo struct {
	blockers []blocker.Blocker
}

func (f *fakeBlockerRepo) Create(_ context.Context, b blocker.Blocker) (blocker.Blocker, error) {
	f.blockers = append(f.blockers, b)
	return b, nil
}

func (f *fakeBlockerRepo) ListByEmployee(_ context.Context, employeeID string) ([]blocker.Blocker, error) {
	var result []blocker.Blocker
	for _, b := range f.blockers {
		if b.EmployeeID == employeeID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBlockerRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeBlockerRepo) DeleteExpiredBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeMappingRepo struct {
	pairs map[string]bool // managerID/employeeID
}

func (f *fakeMappingRepo) Create(_ context.Context, m manager.Mapping) (manager.Mapping, error) {
	return m, nil
}

func (f *fakeMappingRepo) ListByManager(_ context.Context, _ string) ([]manager.Mapping, error) {
	return nil, nil
}

func (f *fakeMappingRepo) ListByEmployee(_ context.Context, _ string) ([]manager.Mapping, error) {
	return nil, nil
}

func (f *fakeMappingRepo) Exists(_ context.Context, managerID, employeeID string) (bool, error) {
	return f.pairs[managerID+"/"+employeeID], nil
}

func (f *fakeMappingRepo) Delete(_ context.Context, _ string) error { return nil }

// authedContext builds a request context carrying verified claims, the way
// jwtauth.Verifier leaves them for the service layer.
func authedContext(t *testing.T, employeeID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"employee_id": employeeID,
		"role":        string(role),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testService(attRepo *fakeAttendanceRepo, blockRepo *fakeBlockerRepo, mapRepo *fakeMappingRepo) attendance.AttendanceService {
	return NewAttendanceService(attRepo, blockRepo, mapRepo, timesheet.DefaultEditPolicy)
}

func recentDate(daysAgo int) string {
	return time.Now().UTC().AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func TestBulkUpsertSavesAllEntries(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := testService(attRepo, &fakeBlockerRepo{}, &fakeMappingRepo{})
	ctx := authedContext(t, "emp-1", user.RoleEmployee)

	login, logout := "09:00", "17:30"
	entries := []attendance.BulkEntry{
		{WorkingDate: recentDate(2), LoginTime: &login, LogoutTime: &logout},
		{WorkingDate: recentDate(1), LoginTime: &login},
	}

	result, err := svc.BulkUpsert(ctx, "emp-1", entries)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SavedCount)
	assert.Empty(t, result.FailedDates)
	assert.Equal(t, "All records saved", result.Message)
	assert.Len(t, attRepo.byID, 2)
}

func TestBulkUpsertContinuesPastFailures(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	blockRepo := &fakeBlockerRepo{}

	// Block one of the three days.
	blockedDay := time.Now().UTC().AddDate(0, 0, -3)
	blockRepo.blockers = []blocker.Blocker{{
		EmployeeID:  "emp-1",
		BlockedFrom: blockedDay,
		BlockedTo:   blockedDay,
		Reason:      "Audit window",
	}}

	svc := testService(attRepo, blockRepo, &fakeMappingRepo{})
	ctx := authedContext(t, "emp-1", user.RoleEmployee)

	login := "09:00"
	entries := []attendance.BulkEntry{
		{WorkingDate: recentDate(4), LoginTime: &login},
		{WorkingDate: recentDate(3), LoginTime: &login}, // blocked
		{WorkingDate: recentDate(2), LoginTime: &login},
	}

	result, err := svc.BulkUpsert(ctx, "emp-1", entries)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SavedCount)
	assert.Equal(t, []string{recentDate(3)}, result.FailedDates)
	assert.Equal(t, "Some records failed to save", result.Message)
}

func TestBulkUpsertUpdatesExistingRecords(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := testService(attRepo, &fakeBlockerRepo{}, &fakeMappingRepo{})
	ctx := authedContext(t, "emp-1", user.RoleEmployee)

	login := "09:00"
	first := []attendance.BulkEntry{{WorkingDate: recentDate(1), LoginTime: &login}}
	_, err := svc.BulkUpsert(ctx, "emp-1", first)
	require.NoError(t, err)

	logout := "17:00"
	second := []attendance.BulkEntry{{WorkingDate: recentDate(1), LogoutTime: &logout}}
	result, err := svc.BulkUpsert(ctx, "emp-1", second)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SavedCount)

	// Still one record, now closed and re-derived.
	require.Len(t, attRepo.byID, 1)
	for _, rec := range attRepo.byID {
		require.NotNil(t, rec.LogoutTime)
		assert.Equal(t, "17:00", *rec.LogoutTime)
		assert.Equal(t, "FullDay", rec.Status)
		require.NotNil(t, rec.TotalHours)
		assert.InDelta(t, 8.0, *rec.TotalHours, 0.001)
	}
}

func TestBulkUpsertRejectsUnrelatedEmployee(t *testing.T) {
	svc := testService(newFakeAttendanceRepo(), &fakeBlockerRepo{}, &fakeMappingRepo{})
	ctx := authedContext(t, "emp-2", user.RoleEmployee)

	login := "09:00"
	_, err := svc.BulkUpsert(ctx, "emp-1", []attendance.BulkEntry{{WorkingDate: recentDate(1), LoginTime: &login}})
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
}

func TestBulkUpsertManagerNeedsMapping(t *testing.T) {
	mapRepo := &fakeMappingRepo{pairs: map[string]bool{"mgr-1/emp-1": true}}
	svc := testService(newFakeAttendanceRepo(), &fakeBlockerRepo{}, mapRepo)

	login := "09:00"
	entries := []attendance.BulkEntry{{WorkingDate: recentDate(1), LoginTime: &login}}

	mapped := authedContext(t, "mgr-1", user.RoleManager)
	result, err := svc.BulkUpsert(mapped, "emp-1", entries)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SavedCount)

	unmapped := authedContext(t, "mgr-2", user.RoleManager)
	_, err = svc.BulkUpsert(unmapped, "emp-1", entries)
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
}

func TestCreateRejectsDuplicateDate(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := testService(attRepo, &fakeBlockerRepo{}, &fakeMappingRepo{})
	ctx := authedContext(t, "emp-1", user.RoleEmployee)

	login := "09:00"
	req := attendance.CreateRequest{EmployeeID: "emp-1", WorkingDate: recentDate(1), LoginTime: &login}

	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateDate)
}

func TestCreateMonthLockBypassForAdmin(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := testService(attRepo, &fakeBlockerRepo{}, &fakeMappingRepo{})

	// Three months back is outside the default editable window.
	oldDate := time.Now().UTC().AddDate(0, -3, 0).Format("2006-01-02")
	login := "09:00"
	req := attendance.CreateRequest{EmployeeID: "emp-1", WorkingDate: oldDate, LoginTime: &login}

	employeeCtx := authedContext(t, "emp-1", user.RoleEmployee)
	_, err := svc.Create(employeeCtx, req)
	assert.ErrorIs(t, err, attendance.ErrDateNotEditable)

	adminCtx := authedContext(t, "admin-1", user.RoleAdmin)
	_, err = svc.Create(adminCtx, req)
	assert.NoError(t, err)
}

func TestSetLogoutTimeClosesTheDay(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := testService(attRepo, &fakeBlockerRepo{}, &fakeMappingRepo{})
	ctx := authedContext(t, "emp-1", user.RoleEmployee)

	login := "08:30"
	_, err := svc.Create(ctx, attendance.CreateRequest{EmployeeID: "emp-1", WorkingDate: recentDate(0), LoginTime: &login})
	require.NoError(t, err)

	err = svc.SetLogoutTime(ctx, "emp-1", attendance.LogoutRequest{WorkingDate: recentDate(0), LogoutTime: "17:00"})
	require.NoError(t, err)

	for _, rec := range attRepo.byID {
		require.NotNil(t, rec.LogoutTime)
		assert.Equal(t, "17:00", *rec.LogoutTime)
		assert.Equal(t, "FullDay", rec.Status)
	}
}

func TestSetLogoutTimeWithoutRecord(t *testing.T) {
	svc := testService(newFakeAttendanceRepo(), &fakeBlockerRepo{}, &fakeMappingRepo{})
	ctx := authedContext(t, "emp-1", user.RoleEmployee)

	err := svc.SetLogoutTime(ctx, "emp-1", attendance.LogoutRequest{WorkingDate: recentDate(1), LogoutTime: "17:00"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
