package postgresql

import (
	"context"
	"strings"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/report"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// ListRows implements report.ReportRepository. Names resolve through an
// explicit join on profiles; users without a profile fall back to their id.
func (r *reportRepositoryImpl) ListRows(ctx context.Context) ([]report.Row, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.clock_in, a.break_start, a.break_end,
		       a.second_break_start, a.second_break_end, a.clock_out,
		       a.late_minutes, a.created_at,
		       COALESCE(p.first_name, ''), COALESCE(p.last_name, '')
		FROM attendance a
		LEFT JOIN profiles p ON p.user_id = a.user_id
		ORDER BY a.created_at DESC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.Row
	for rows.Next() {
		var row report.Row
		var firstName, lastName string
		err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.ClockIn,
			&row.BreakStart,
			&row.BreakEnd,
			&row.SecondBreakStart,
			&row.SecondBreakEnd,
			&row.ClockOut,
			&row.LateMinutes,
			&row.CreatedAt,
			&firstName,
			&lastName,
		)
		if err != nil {
			return nil, err
		}
		row.EmployeeName = strings.TrimSpace(firstName + " " + lastName)
		if row.EmployeeName == "" {
			row.EmployeeName = row.UserID
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
