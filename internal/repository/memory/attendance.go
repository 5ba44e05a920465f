// Package memory holds in-memory repository implementations. They back the
// service tests and keep the attendance state machine runnable without a
// database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance
	order   []string
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.Attendance),
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = uuid.NewString()
	r.records[record.ID] = record
	r.order = append(r.order, record.ID)
	return record, nil
}

func (r *AttendanceRepository) GetActiveByUser(ctx context.Context, userID string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		record := r.records[r.order[i]]
		if record.UserID == userID && record.ClockOut == nil {
			return record, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (r *AttendanceRepository) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.records[record.ID]
	if !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}

	// clock_in and late_minutes are frozen at create
	stored.BreakStart = record.BreakStart
	stored.BreakEnd = record.BreakEnd
	stored.SecondBreakStart = record.SecondBreakStart
	stored.SecondBreakEnd = record.SecondBreakEnd
	stored.ClockOut = record.ClockOut
	r.records[record.ID] = stored
	return stored, nil
}

func (r *AttendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []attendance.Attendance
	for _, id := range r.order {
		record := r.records[id]
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	return result, nil
}

// All returns every stored record in insertion order.
func (r *AttendanceRepository) All() []attendance.Attendance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]attendance.Attendance, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.records[id])
	}
	return result
}
