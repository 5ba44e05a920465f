package report

import "context"

type ReportService interface {
	// MyTodaySummary aggregates the acting user's records for today.
	MyTodaySummary(ctx context.Context) (TodaySummary, error)
	// AttendanceReport is the admin view over every employee's records.
	AttendanceReport(ctx context.Context, filter Filter) (ReportResponse, error)
}
