package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/profile"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	profiles profile.ProfileRepository
	now      func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, profileRepo profile.ProfileRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		profiles:             profileRepo,
		now:                  time.Now,
	}
}

// getUserID extracts user_id from JWT claims
func getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return userID, nil
}

func mapAttendanceToResponse(a attendance.Attendance) attendance.AttendanceResponse {
	createdAt := a.CreatedAt
	return attendance.AttendanceResponse{
		ID:               a.ID,
		State:            attendance.DeriveState(&a),
		ClockIn:          a.ClockIn,
		BreakStart:       a.BreakStart,
		BreakEnd:         a.BreakEnd,
		SecondBreakStart: a.SecondBreakStart,
		SecondBreakEnd:   a.SecondBreakEnd,
		ClockOut:         a.ClockOut,
		LateMinutes:      a.LateMinutes,
		WorkedMinutes:    attendance.WorkedMinutes(a),
		WorkedHours:      attendance.WorkedHours(a),
		CreatedAt:        &createdAt,
	}
}

// ClockIn implements attendance.AttendanceService. Lateness is computed
// once here from the profile's current schedule and never recomputed, so
// later schedule edits do not rewrite history.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Re-entrancy guard: an open shift makes clock-in a no-op.
	active, err := s.GetActiveByUser(ctx, userID)
	if err == nil {
		return mapAttendanceToResponse(active), nil
	}
	if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up active record: %w", err)
	}

	now := s.now()
	record := attendance.Attendance{
		UserID:  userID,
		ClockIn: &now,
	}

	prof, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		record.LateMinutes = attendance.ComputeLateMinutes(now, prof.ExpectedStartTime, prof.GraceMinutes)
	case errors.Is(err, profile.ErrProfileNotFound):
		// No schedule configured; lateness stays null.
	default:
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load profile: %w", err)
	}

	created, err := s.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. An open break is left
// open; it simply contributes nothing to worked time.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	active, err := s.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up active record: %w", err)
	}

	now := s.now()
	active.ClockOut = &now

	updated, err := s.Update(ctx, active)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// StartBreak implements attendance.AttendanceService. Breaks fill the first
// slot, then the second; a third attempt fails.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	active, err := s.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up active record: %w", err)
	}

	if attendance.DeriveState(&active) == attendance.StateOnBreak {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyOnBreak
	}

	now := s.now()
	switch {
	case active.BreakStart == nil:
		active.BreakStart = &now
	case active.SecondBreakStart == nil:
		active.SecondBreakStart = &now
	default:
		return attendance.AttendanceResponse{}, attendance.ErrBreaksExhausted
	}

	updated, err := s.Update(ctx, active)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// EndBreak implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	active, err := s.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up active record: %w", err)
	}

	now := s.now()
	switch {
	case active.SecondBreakStart != nil && active.SecondBreakEnd == nil:
		active.SecondBreakEnd = &now
	case active.BreakStart != nil && active.BreakEnd == nil:
		active.BreakEnd = &now
	default:
		return attendance.AttendanceResponse{}, attendance.ErrNoActiveBreak
	}

	updated, err := s.Update(ctx, active)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// Status implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Status(ctx context.Context) (attendance.AttendanceResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	active, err := s.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{State: attendance.StateClockedOut}, nil
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up active record: %w", err)
	}

	return mapAttendanceToResponse(active), nil
}
