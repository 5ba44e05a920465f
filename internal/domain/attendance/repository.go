package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	// GetActiveByUser returns the user's open record (clock_out unset).
	// ErrRecordNotFound when the user has none.
	GetActiveByUser(ctx context.Context, userID string) (Attendance, error)
	Update(ctx context.Context, record Attendance) (Attendance, error)
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)
}
