package memory

import (
	"context"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/report"
)

// ReportRepository composes the attendance and profile stores the way the
// SQL implementation joins their tables.
type ReportRepository struct {
	attendance *AttendanceRepository
	profiles   *ProfileRepository
}

func NewReportRepository(attendance *AttendanceRepository, profiles *ProfileRepository) *ReportRepository {
	return &ReportRepository{
		attendance: attendance,
		profiles:   profiles,
	}
}

func (r *ReportRepository) ListRows(ctx context.Context) ([]report.Row, error) {
	records := r.attendance.All()

	rows := make([]report.Row, 0, len(records))
	for _, record := range records {
		row := report.Row{Attendance: record, EmployeeName: record.UserID}
		if p, err := r.profiles.GetByUserID(ctx, record.UserID); err == nil {
			row.EmployeeName = p.DisplayName()
		}
		rows = append(rows, row)
	}
	return rows, nil
}
