package attendance

import "time"

// Attendance is one shift record. A record is "active" while clock_out is
// still unset; storage guarantees at most one active record per user.
type Attendance struct {
	ID               string
	UserID           string
	ClockIn          *time.Time
	BreakStart       *time.Time
	BreakEnd         *time.Time
	SecondBreakStart *time.Time
	SecondBreakEnd   *time.Time
	ClockOut         *time.Time
	LateMinutes      *int
	CreatedAt        time.Time
}

// State is derived from the record on every read, never stored.
type State string

const (
	StateClockedOut State = "clocked_out"
	StateWorking    State = "working"
	StateOnBreak    State = "on_break"
)

// DeriveState computes the current state from an active record.
// A nil or closed record means the user is clocked out.
func DeriveState(a *Attendance) State {
	if a == nil || a.ClockIn == nil || a.ClockOut != nil {
		return StateClockedOut
	}
	if openBreak(a.BreakStart, a.BreakEnd) || openBreak(a.SecondBreakStart, a.SecondBreakEnd) {
		return StateOnBreak
	}
	return StateWorking
}

func openBreak(start, end *time.Time) bool {
	return start != nil && end == nil
}
