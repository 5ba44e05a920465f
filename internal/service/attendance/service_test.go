package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/profile"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-app/timeclock-backend-go/internal/repository/memory"
)

const testUserID = "7f2b6e3a-9c41-4d2e-8f5a-1b2c3d4e5f60"

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fixture struct {
	svc        *AttendanceServiceImpl
	records    *memory.AttendanceRepository
	profiles   *memory.ProfileRepository
	ctx        context.Context
	currentNow time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	records := memory.NewAttendanceRepository()
	profiles := memory.NewProfileRepository()

	f := &fixture{
		records:    records,
		profiles:   profiles,
		ctx:        authedContext(t, testUserID),
		currentNow: time.Date(2025, time.June, 16, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewAttendanceService(records, profiles).(*AttendanceServiceImpl)
	f.svc.now = func() time.Time { return f.currentNow }
	return f
}

func (f *fixture) advanceTo(hour, min int) {
	f.currentNow = time.Date(2025, time.June, 16, hour, min, 0, 0, time.UTC)
}

func (f *fixture) setSchedule(t *testing.T, expectedStart string, grace int) {
	t.Helper()
	_, err := f.profiles.Create(context.Background(), profile.Profile{
		UserID:            testUserID,
		FirstName:         "Jane",
		LastName:          "Doe",
		Role:              user.RoleEmployee,
		ExpectedStartTime: &expectedStart,
		GraceMinutes:      grace,
	})
	require.NoError(t, err)
}

func TestClockInWithoutSchedule(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, attendance.StateWorking, resp.State)
	require.NotNil(t, resp.ClockIn)
	assert.Nil(t, resp.LateMinutes)
	assert.Nil(t, resp.WorkedHours)
}

func TestClockInComputesLateness(t *testing.T) {
	f := newFixture(t)
	f.setSchedule(t, "09:00:00", 5)
	f.advanceTo(9, 20)

	resp, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 15, *resp.LateMinutes)
}

func TestClockInWithinGraceIsNotLate(t *testing.T) {
	f := newFixture(t)
	f.setSchedule(t, "09:00:00", 5)
	f.advanceTo(9, 4)

	resp, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 0, *resp.LateMinutes)
}

func TestClockInTwiceIsNoOp(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	f.advanceTo(10, 0)
	second, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ClockIn, second.ClockIn)
	assert.Len(t, f.records.All(), 1)
}

func TestLatenessFrozenAfterScheduleChange(t *testing.T) {
	f := newFixture(t)
	f.setSchedule(t, "09:00:00", 5)
	f.advanceTo(9, 20)

	resp, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 15, *resp.LateMinutes)

	// Moving the schedule later must not rewrite the stored lateness.
	prof, err := f.profiles.GetByUserID(context.Background(), testUserID)
	require.NoError(t, err)
	later := "10:00:00"
	prof.ExpectedStartTime = &later
	_, err = f.profiles.Update(context.Background(), prof)
	require.NoError(t, err)

	f.advanceTo(17, 0)
	out, err := f.svc.ClockOut(f.ctx)
	require.NoError(t, err)
	require.NotNil(t, out.LateMinutes)
	assert.Equal(t, 15, *out.LateMinutes)
}

func TestClockOutWithoutShift(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClockOut(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestFullShiftWithOneBreak(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	f.advanceTo(11, 0)
	resp, err := f.svc.StartBreak(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateOnBreak, resp.State)

	f.advanceTo(11, 15)
	resp, err = f.svc.EndBreak(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateWorking, resp.State)

	f.advanceTo(17, 0)
	resp, err = f.svc.ClockOut(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, attendance.StateClockedOut, resp.State)
	assert.Equal(t, 465, resp.WorkedMinutes)
	require.NotNil(t, resp.WorkedHours)
	assert.InDelta(t, 7.75, *resp.WorkedHours, 1e-9)
}

func TestBreakSlotsFillInOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	f.advanceTo(11, 0)
	resp, err := f.svc.StartBreak(f.ctx)
	require.NoError(t, err)
	assert.NotNil(t, resp.BreakStart)
	assert.Nil(t, resp.SecondBreakStart)

	f.advanceTo(11, 15)
	_, err = f.svc.EndBreak(f.ctx)
	require.NoError(t, err)

	f.advanceTo(15, 0)
	resp, err = f.svc.StartBreak(f.ctx)
	require.NoError(t, err)
	assert.NotNil(t, resp.SecondBreakStart)

	f.advanceTo(15, 10)
	_, err = f.svc.EndBreak(f.ctx)
	require.NoError(t, err)

	f.advanceTo(16, 0)
	_, err = f.svc.StartBreak(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrBreaksExhausted)
}

func TestStartBreakWhileOnBreak(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	f.advanceTo(11, 0)
	_, err = f.svc.StartBreak(f.ctx)
	require.NoError(t, err)

	_, err = f.svc.StartBreak(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyOnBreak)
}

func TestStartBreakWithoutShift(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.StartBreak(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestEndBreakWithoutActiveBreak(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	_, err = f.svc.EndBreak(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrNoActiveBreak)
}

func TestClockOutWithOpenBreak(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	f.advanceTo(11, 0)
	_, err = f.svc.StartBreak(f.ctx)
	require.NoError(t, err)

	f.advanceTo(17, 0)
	resp, err := f.svc.ClockOut(f.ctx)
	require.NoError(t, err)

	// The open break stays open and deducts nothing.
	assert.NotNil(t, resp.BreakStart)
	assert.Nil(t, resp.BreakEnd)
	assert.Equal(t, 480, resp.WorkedMinutes)
}

func TestStatus(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Status(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateClockedOut, resp.State)
	assert.Empty(t, resp.ID)

	_, err = f.svc.ClockIn(f.ctx)
	require.NoError(t, err)

	resp, err = f.svc.Status(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.StateWorking, resp.State)
	assert.NotEmpty(t, resp.ID)
}

func TestMissingClaims(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClockIn(context.Background())
	assert.Error(t, err)
}
