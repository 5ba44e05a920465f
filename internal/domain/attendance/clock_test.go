package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

func at(hour, min int) time.Time {
	return time.Date(2025, time.June, 16, hour, min, 0, 0, time.UTC)
}

func TestComputeLateMinutes(t *testing.T) {
	tests := []struct {
		name          string
		clockIn       time.Time
		expectedStart *string
		grace         int
		want          *int
	}{
		{
			name:          "no schedule configured",
			clockIn:       at(9, 20),
			expectedStart: nil,
			grace:         5,
			want:          nil,
		},
		{
			name:          "empty schedule",
			clockIn:       at(9, 20),
			expectedStart: strPtr(""),
			grace:         5,
			want:          nil,
		},
		{
			name:          "malformed schedule",
			clockIn:       at(9, 20),
			expectedStart: strPtr("nine-ish"),
			grace:         5,
			want:          nil,
		},
		{
			name:          "on time",
			clockIn:       at(8, 55),
			expectedStart: strPtr("09:00:00"),
			grace:         5,
			want:          intPtr(0),
		},
		{
			name:          "within grace",
			clockIn:       at(9, 4),
			expectedStart: strPtr("09:00:00"),
			grace:         5,
			want:          intPtr(0),
		},
		{
			name:          "exactly at grace deadline",
			clockIn:       at(9, 5),
			expectedStart: strPtr("09:00:00"),
			grace:         5,
			want:          intPtr(0),
		},
		{
			name:          "twenty past with five grace",
			clockIn:       at(9, 20),
			expectedStart: strPtr("09:00:00"),
			grace:         5,
			want:          intPtr(15),
		},
		{
			name:          "partial minute rounds down",
			clockIn:       time.Date(2025, time.June, 16, 9, 6, 30, 0, time.UTC),
			expectedStart: strPtr("09:00:00"),
			grace:         5,
			want:          intPtr(1),
		},
		{
			name:          "short time format accepted",
			clockIn:       at(9, 20),
			expectedStart: strPtr("09:00"),
			grace:         5,
			want:          intPtr(15),
		},
		{
			name:          "zero grace",
			clockIn:       at(9, 3),
			expectedStart: strPtr("09:00:00"),
			grace:         0,
			want:          intPtr(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLateMinutes(tt.clockIn, tt.expectedStart, tt.grace)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func intPtr(i int) *int { return &i }

func TestWorkedMinutes(t *testing.T) {
	tests := []struct {
		name   string
		record Attendance
		want   int
	}{
		{
			name:   "open shift counts zero",
			record: Attendance{ClockIn: timePtr(at(9, 0))},
			want:   0,
		},
		{
			name:   "no clock in",
			record: Attendance{},
			want:   0,
		},
		{
			name: "clock in equals clock out",
			record: Attendance{
				ClockIn:  timePtr(at(9, 0)),
				ClockOut: timePtr(at(9, 0)),
			},
			want: 0,
		},
		{
			name: "full day with one break",
			record: Attendance{
				ClockIn:    timePtr(at(9, 0)),
				BreakStart: timePtr(at(11, 0)),
				BreakEnd:   timePtr(at(11, 15)),
				ClockOut:   timePtr(at(17, 0)),
			},
			want: 465,
		},
		{
			name: "two breaks deducted",
			record: Attendance{
				ClockIn:          timePtr(at(9, 0)),
				BreakStart:       timePtr(at(11, 0)),
				BreakEnd:         timePtr(at(11, 30)),
				SecondBreakStart: timePtr(at(15, 0)),
				SecondBreakEnd:   timePtr(at(15, 10)),
				ClockOut:         timePtr(at(17, 0)),
			},
			want: 440,
		},
		{
			name: "open break contributes nothing",
			record: Attendance{
				ClockIn:    timePtr(at(9, 0)),
				BreakStart: timePtr(at(11, 0)),
				ClockOut:   timePtr(at(17, 0)),
			},
			want: 480,
		},
		{
			name: "breaks longer than shift clamp to zero",
			record: Attendance{
				ClockIn:    timePtr(at(9, 0)),
				BreakStart: timePtr(at(9, 0)),
				BreakEnd:   timePtr(at(13, 0)),
				ClockOut:   timePtr(at(10, 0)),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkedMinutes(tt.record))
		})
	}
}

func TestWorkedHours(t *testing.T) {
	t.Run("nil while shift open", func(t *testing.T) {
		got := WorkedHours(Attendance{ClockIn: timePtr(at(9, 0))})
		assert.Nil(t, got)
	})

	t.Run("decimal hours for closed shift", func(t *testing.T) {
		got := WorkedHours(Attendance{
			ClockIn:    timePtr(at(9, 0)),
			BreakStart: timePtr(at(11, 0)),
			BreakEnd:   timePtr(at(11, 15)),
			ClockOut:   timePtr(at(17, 0)),
		})
		require.NotNil(t, got)
		assert.InDelta(t, 7.75, *got, 1e-9)
	})

	t.Run("never negative", func(t *testing.T) {
		got := WorkedHours(Attendance{
			ClockIn:    timePtr(at(9, 0)),
			BreakStart: timePtr(at(9, 0)),
			BreakEnd:   timePtr(at(14, 0)),
			ClockOut:   timePtr(at(10, 0)),
		})
		require.NotNil(t, got)
		assert.Equal(t, 0.0, *got)
	})
}

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name   string
		record *Attendance
		want   State
	}{
		{
			name:   "nil record",
			record: nil,
			want:   StateClockedOut,
		},
		{
			name:   "closed record",
			record: &Attendance{ClockIn: timePtr(at(9, 0)), ClockOut: timePtr(at(17, 0))},
			want:   StateClockedOut,
		},
		{
			name:   "working",
			record: &Attendance{ClockIn: timePtr(at(9, 0))},
			want:   StateWorking,
		},
		{
			name: "first break open",
			record: &Attendance{
				ClockIn:    timePtr(at(9, 0)),
				BreakStart: timePtr(at(11, 0)),
			},
			want: StateOnBreak,
		},
		{
			name: "first break closed",
			record: &Attendance{
				ClockIn:    timePtr(at(9, 0)),
				BreakStart: timePtr(at(11, 0)),
				BreakEnd:   timePtr(at(11, 15)),
			},
			want: StateWorking,
		},
		{
			name: "second break open",
			record: &Attendance{
				ClockIn:          timePtr(at(9, 0)),
				BreakStart:       timePtr(at(11, 0)),
				BreakEnd:         timePtr(at(11, 15)),
				SecondBreakStart: timePtr(at(15, 0)),
			},
			want: StateOnBreak,
		},
		{
			name: "both breaks closed",
			record: &Attendance{
				ClockIn:          timePtr(at(9, 0)),
				BreakStart:       timePtr(at(11, 0)),
				BreakEnd:         timePtr(at(11, 15)),
				SecondBreakStart: timePtr(at(15, 0)),
				SecondBreakEnd:   timePtr(at(15, 10)),
			},
			want: StateWorking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveState(tt.record))
		})
	}
}
