package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	report.ReportRepository
	records attendance.AttendanceRepository
	now     func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		records:          attendanceRepo,
		now:              time.Now,
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

// MyTodaySummary implements report.ReportService.
func (s *ReportServiceImpl) MyTodaySummary(ctx context.Context) (report.TodaySummary, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return report.TodaySummary{}, err
	}

	var (
		records []attendance.Attendance
		active  attendance.Attendance
		hasOpen bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.records.ListByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		active, err = s.records.GetActiveByUser(gctx, userID)
		if err != nil {
			if errors.Is(err, attendance.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to look up active record: %w", err)
		}
		hasOpen = true
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.TodaySummary{}, err
	}

	summary := SummarizeToday(records, s.now())
	if hasOpen {
		summary.State = attendance.DeriveState(&active)
	}
	return summary, nil
}

// AttendanceReport implements report.ReportService. Authorization (admin
// only) is enforced at the router.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, filter report.Filter) (report.ReportResponse, error) {
	rows, err := s.ListRows(ctx)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to list report rows: %w", err)
	}

	return FilterAndPaginate(rows, filter), nil
}
