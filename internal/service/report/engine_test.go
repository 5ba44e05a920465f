package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/report"
)

func timePtr(t time.Time) *time.Time { return &t }

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func day(d, hour, min int) time.Time {
	return time.Date(2025, time.June, d, hour, min, 0, 0, time.UTC)
}

// closedShift builds a record worked from 9:00 to 17:00 on the given day.
func closedShift(userID, name string, d int) report.Row {
	return report.Row{
		Attendance: attendance.Attendance{
			ID:        fmt.Sprintf("%s-%d", userID, d),
			UserID:    userID,
			ClockIn:   timePtr(day(d, 9, 0)),
			ClockOut:  timePtr(day(d, 17, 0)),
			CreatedAt: day(d, 9, 0),
		},
		EmployeeName: name,
	}
}

func TestSummarizeToday(t *testing.T) {
	now := day(16, 18, 0)

	records := []attendance.Attendance{
		{
			ClockIn:     timePtr(day(16, 9, 0)),
			BreakStart:  timePtr(day(16, 11, 0)),
			BreakEnd:    timePtr(day(16, 11, 15)),
			ClockOut:    timePtr(day(16, 17, 0)),
			LateMinutes: intPtr(15),
			CreatedAt:   day(16, 9, 0),
		},
		// Open shift counts zero worked minutes.
		{
			ClockIn:   timePtr(day(16, 18, 0)),
			CreatedAt: day(16, 18, 0),
		},
		// Yesterday is excluded entirely.
		{
			ClockIn:     timePtr(day(15, 9, 0)),
			ClockOut:    timePtr(day(15, 17, 0)),
			LateMinutes: intPtr(40),
			CreatedAt:   day(15, 9, 0),
		},
	}

	summary := SummarizeToday(records, now)
	assert.Equal(t, 465, summary.WorkedMinutes)
	assert.Equal(t, 15, summary.LateMinutes)
	assert.True(t, summary.IsLate)
}

func TestSummarizeTodayNotLate(t *testing.T) {
	records := []attendance.Attendance{
		{
			ClockIn:     timePtr(day(16, 9, 0)),
			ClockOut:    timePtr(day(16, 17, 0)),
			LateMinutes: intPtr(0),
			CreatedAt:   day(16, 9, 0),
		},
		// Absent lateness counts as zero.
		{
			ClockIn:   timePtr(day(16, 18, 0)),
			ClockOut:  timePtr(day(16, 19, 0)),
			CreatedAt: day(16, 18, 0),
		},
	}

	summary := SummarizeToday(records, day(16, 20, 0))
	assert.Equal(t, 540, summary.WorkedMinutes)
	assert.Equal(t, 0, summary.LateMinutes)
	assert.False(t, summary.IsLate)
}

func TestSummarizeTodayEmpty(t *testing.T) {
	summary := SummarizeToday(nil, day(16, 9, 0))
	assert.Equal(t, 0, summary.WorkedMinutes)
	assert.False(t, summary.IsLate)
}

func TestFilterAndPaginatePageMath(t *testing.T) {
	var rows []report.Row
	for d := 1; d <= 11; d++ {
		rows = append(rows, closedShift("user-a", "Alice", d))
	}

	result := FilterAndPaginate(rows, report.Filter{Page: 1})
	assert.Equal(t, 11, result.TotalItems)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Rows, 10)

	result = FilterAndPaginate(rows, report.Filter{Page: 2})
	assert.Len(t, result.Rows, 1)

	// Out-of-range pages clamp into [1, totalPages].
	result = FilterAndPaginate(rows, report.Filter{Page: 5})
	assert.Equal(t, 2, result.Page)
	assert.Len(t, result.Rows, 1)

	result = FilterAndPaginate(rows, report.Filter{Page: 0})
	assert.Equal(t, 1, result.Page)
	assert.Len(t, result.Rows, 10)
}

func TestFilterAndPaginateEmpty(t *testing.T) {
	result := FilterAndPaginate(nil, report.Filter{Page: 3})
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 0, result.TotalItems)
	assert.Empty(t, result.Rows)
}

func TestFilterByEmployee(t *testing.T) {
	rows := []report.Row{
		closedShift("user-a", "Alice", 1),
		closedShift("user-b", "Bob", 1),
		closedShift("user-a", "Alice", 2),
	}

	result := FilterAndPaginate(rows, report.Filter{EmployeeID: strPtr("user-a"), Page: 1})
	assert.Equal(t, 2, result.TotalItems)
	for _, row := range result.Rows {
		assert.Equal(t, "user-a", row.UserID)
	}

	// The dropdown still lists everyone.
	require.Len(t, result.Employees, 2)
}

func TestPartialDateRangeFiltersNothing(t *testing.T) {
	rows := []report.Row{
		closedShift("user-a", "Alice", 1),
		closedShift("user-a", "Alice", 10),
		closedShift("user-a", "Alice", 20),
	}

	result := FilterAndPaginate(rows, report.Filter{FromDate: strPtr("2025-06-05"), Page: 1})
	assert.Equal(t, 3, result.TotalItems)

	result = FilterAndPaginate(rows, report.Filter{ToDate: strPtr("2025-06-05"), Page: 1})
	assert.Equal(t, 3, result.TotalItems)
}

func TestCompleteDateRangeIsInclusive(t *testing.T) {
	rows := []report.Row{
		closedShift("user-a", "Alice", 1),
		closedShift("user-a", "Alice", 5),
		closedShift("user-a", "Alice", 10),
		closedShift("user-a", "Alice", 20),
	}

	result := FilterAndPaginate(rows, report.Filter{
		FromDate: strPtr("2025-06-05"),
		ToDate:   strPtr("2025-06-10"),
		Page:     1,
	})
	assert.Equal(t, 2, result.TotalItems)
}

func TestRangeTotalHoursCoversWholeFilteredSet(t *testing.T) {
	var rows []report.Row
	for d := 1; d <= 12; d++ {
		rows = append(rows, closedShift("user-a", "Alice", d)) // 8h each
	}
	// An open shift contributes nothing to the total.
	rows = append(rows, report.Row{
		Attendance: attendance.Attendance{
			ID:        "open",
			UserID:    "user-a",
			ClockIn:   timePtr(day(13, 9, 0)),
			CreatedAt: day(13, 9, 0),
		},
		EmployeeName: "Alice",
	})

	result := FilterAndPaginate(rows, report.Filter{Page: 2})
	assert.InDelta(t, 96.0, result.RangeTotalHours, 1e-9)
}

func TestEmployeeOptionsFirstSeenAndSorted(t *testing.T) {
	rows := []report.Row{
		closedShift("user-c", "Carol", 1),
		closedShift("user-a", "Alice", 1),
		{
			Attendance: attendance.Attendance{
				ID:        "user-c-renamed",
				UserID:    "user-c",
				ClockIn:   timePtr(day(2, 9, 0)),
				ClockOut:  timePtr(day(2, 17, 0)),
				CreatedAt: day(2, 9, 0),
			},
			// Later rows never override the first-seen name.
			EmployeeName: "Caroline",
		},
		closedShift("user-b", "Bob", 1),
	}

	result := FilterAndPaginate(rows, report.Filter{Page: 1})
	require.Len(t, result.Employees, 3)
	assert.Equal(t, "Alice", result.Employees[0].Name)
	assert.Equal(t, "Bob", result.Employees[1].Name)
	assert.Equal(t, "Carol", result.Employees[2].Name)
	assert.Equal(t, "user-c", result.Employees[2].UserID)
}
