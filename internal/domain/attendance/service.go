package attendance

import "context"

// AttendanceService drives the shift state machine for the acting user
// (taken from the request's JWT claims).
type AttendanceService interface {
	// ClockIn opens a shift. Calling it while a shift is already open is a
	// no-op that returns the existing record.
	ClockIn(ctx context.Context) (AttendanceResponse, error)
	ClockOut(ctx context.Context) (AttendanceResponse, error)
	StartBreak(ctx context.Context) (AttendanceResponse, error)
	EndBreak(ctx context.Context) (AttendanceResponse, error)
	// Status returns the derived state and, if present, the active record.
	Status(ctx context.Context) (AttendanceResponse, error)
}
