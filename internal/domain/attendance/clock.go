package attendance

import (
	"math"
	"time"
)

// DefaultGraceMinutes applies when a profile has no grace period configured.
const DefaultGraceMinutes = 5

// ComputeLateMinutes returns how many whole minutes past the grace deadline
// the clock-in happened, or nil when no usable schedule exists. The deadline
// is the clock-in's calendar date at expectedStart plus the grace period.
func ComputeLateMinutes(clockIn time.Time, expectedStart *string, graceMinutes int) *int {
	if expectedStart == nil || *expectedStart == "" {
		return nil
	}

	parsed, err := time.Parse("15:04:05", *expectedStart)
	if err != nil {
		parsed, err = time.Parse("15:04", *expectedStart)
		if err != nil {
			return nil
		}
	}

	scheduled := time.Date(
		clockIn.Year(), clockIn.Month(), clockIn.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
		clockIn.Location(),
	)
	deadline := scheduled.Add(time.Duration(graceMinutes) * time.Minute)

	late := int(math.Floor(clockIn.Sub(deadline).Minutes()))
	if late < 0 {
		late = 0
	}
	return &late
}

// WorkedMinutes returns the minutes worked in a closed shift, deducting
// every completed break pair. Open shifts count as zero; an open break pair
// deducts nothing. Never negative.
func WorkedMinutes(a Attendance) int {
	if a.ClockIn == nil || a.ClockOut == nil {
		return 0
	}

	worked := a.ClockOut.Sub(*a.ClockIn)
	worked -= breakDuration(a.BreakStart, a.BreakEnd)
	worked -= breakDuration(a.SecondBreakStart, a.SecondBreakEnd)

	minutes := int(worked.Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return minutes
}

// WorkedHours returns the decimal hours worked in a closed shift, or nil
// while the shift is still open. Same break arithmetic as WorkedMinutes.
func WorkedHours(a Attendance) *float64 {
	if a.ClockIn == nil || a.ClockOut == nil {
		return nil
	}

	worked := a.ClockOut.Sub(*a.ClockIn)
	worked -= breakDuration(a.BreakStart, a.BreakEnd)
	worked -= breakDuration(a.SecondBreakStart, a.SecondBreakEnd)

	hours := worked.Hours()
	if hours < 0 {
		hours = 0
	}
	return &hours
}

// breakDuration counts only completed pairs; an open break contributes zero.
func breakDuration(start, end *time.Time) time.Duration {
	if start == nil || end == nil {
		return 0
	}
	return end.Sub(*start)
}
