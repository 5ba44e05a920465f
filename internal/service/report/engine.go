package report

import (
	"math"
	"sort"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/report"
)

// pageSize is fixed; the admin table always shows ten rows per page.
const pageSize = 10

// SummarizeToday aggregates the records created on now's calendar date.
// Open shifts contribute zero worked minutes; late minutes sum the values
// frozen at each clock-in, with absent treated as zero.
func SummarizeToday(records []attendance.Attendance, now time.Time) report.TodaySummary {
	summary := report.TodaySummary{State: attendance.StateClockedOut}

	y, m, d := now.Date()
	for _, record := range records {
		ry, rm, rd := record.CreatedAt.Date()
		if ry != y || rm != m || rd != d {
			continue
		}
		summary.WorkedMinutes += attendance.WorkedMinutes(record)
		if record.LateMinutes != nil {
			summary.LateMinutes += *record.LateMinutes
		}
	}
	summary.IsLate = summary.LateMinutes > 0
	return summary
}

// FilterAndPaginate applies the admin report filter over a full snapshot.
// The employee dropdown and range totals are computed before slicing the
// requested page, so they always describe the whole result set.
func FilterAndPaginate(rows []report.Row, filter report.Filter) report.ReportResponse {
	filtered := filterRows(rows, filter)

	var totalHours float64
	for _, row := range filtered {
		if hours := attendance.WorkedHours(row.Attendance); hours != nil {
			totalHours += *hours
		}
	}

	totalPages := int(math.Ceil(float64(len(filtered)) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	pageRows := make([]report.RowResponse, 0, end-start)
	for _, row := range filtered[start:end] {
		pageRows = append(pageRows, mapRowToResponse(row))
	}

	return report.ReportResponse{
		Rows:            pageRows,
		Page:            page,
		TotalPages:      totalPages,
		TotalItems:      len(filtered),
		RangeTotalHours: totalHours,
		Employees:       employeeOptions(rows),
	}
}

func filterRows(rows []report.Row, filter report.Filter) []report.Row {
	from, to, rangeActive := dateRange(filter)

	var filtered []report.Row
	for _, row := range rows {
		if filter.EmployeeID != nil && row.UserID != *filter.EmployeeID {
			continue
		}
		if rangeActive {
			day := truncateToDay(row.CreatedAt)
			if day.Before(from) || day.After(to) {
				continue
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// dateRange activates only when both ends parse; a half-open or malformed
// range filters nothing.
func dateRange(filter report.Filter) (from, to time.Time, active bool) {
	if filter.FromDate == nil || filter.ToDate == nil {
		return time.Time{}, time.Time{}, false
	}
	from, err := time.Parse("2006-01-02", *filter.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse("2006-01-02", *filter.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// employeeOptions derives the dropdown from the unfiltered snapshot: the
// first-seen display name per user, sorted alphabetically.
func employeeOptions(rows []report.Row) []report.EmployeeOption {
	seen := make(map[string]bool)
	options := make([]report.EmployeeOption, 0)
	for _, row := range rows {
		if seen[row.UserID] {
			continue
		}
		seen[row.UserID] = true
		options = append(options, report.EmployeeOption{
			UserID: row.UserID,
			Name:   row.EmployeeName,
		})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})
	return options
}

func mapRowToResponse(row report.Row) report.RowResponse {
	createdAt := row.CreatedAt
	return report.RowResponse{
		AttendanceResponse: attendance.AttendanceResponse{
			ID:               row.ID,
			State:            attendance.DeriveState(&row.Attendance),
			ClockIn:          row.ClockIn,
			BreakStart:       row.BreakStart,
			BreakEnd:         row.BreakEnd,
			SecondBreakStart: row.SecondBreakStart,
			SecondBreakEnd:   row.SecondBreakEnd,
			ClockOut:         row.ClockOut,
			LateMinutes:      row.LateMinutes,
			WorkedMinutes:    attendance.WorkedMinutes(row.Attendance),
			WorkedHours:      attendance.WorkedHours(row.Attendance),
			CreatedAt:        &createdAt,
		},
		UserID:       row.UserID,
		EmployeeName: row.EmployeeName,
	}
}
