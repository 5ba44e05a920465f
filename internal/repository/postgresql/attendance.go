package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, user_id, clock_in, break_start, break_end, second_break_start, second_break_end, clock_out, late_minutes, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ClockIn,
		&a.BreakStart,
		&a.BreakEnd,
		&a.SecondBreakStart,
		&a.SecondBreakEnd,
		&a.ClockOut,
		&a.LateMinutes,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (user_id, clock_in, late_minutes)
		VALUES ($1, $2, $3)
		RETURNING ` + attendanceColumns

	return scanAttendance(q.QueryRow(ctx, query,
		record.UserID,
		record.ClockIn,
		record.LateMinutes,
	))
}

// GetActiveByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetActiveByUser(ctx context.Context, userID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`
	return scanAttendance(q.QueryRow(ctx, query, userID))
}

// Update implements attendance.AttendanceRepository. Only the mutable
// transition fields change; clock_in and late_minutes are frozen at create.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET break_start = $2,
		    break_end = $3,
		    second_break_start = $4,
		    second_break_end = $5,
		    clock_out = $6
		WHERE id = $1
		RETURNING ` + attendanceColumns

	return scanAttendance(q.QueryRow(ctx, query,
		record.ID,
		record.BreakStart,
		record.BreakEnd,
		record.SecondBreakStart,
		record.SecondBreakEnd,
		record.ClockOut,
	))
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
