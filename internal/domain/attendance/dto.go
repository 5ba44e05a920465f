package attendance

import "time"

// AttendanceResponse is the API shape of one record plus its derived fields.
type AttendanceResponse struct {
	ID               string     `json:"id,omitempty"`
	State            State      `json:"state"`
	ClockIn          *time.Time `json:"clock_in"`
	BreakStart       *time.Time `json:"break_start"`
	BreakEnd         *time.Time `json:"break_end"`
	SecondBreakStart *time.Time `json:"second_break_start"`
	SecondBreakEnd   *time.Time `json:"second_break_end"`
	ClockOut         *time.Time `json:"clock_out"`
	LateMinutes      *int       `json:"late_minutes"`
	WorkedMinutes    int        `json:"worked_minutes"`
	WorkedHours      *float64   `json:"worked_hours"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}
