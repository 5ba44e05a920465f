package attendance

import "errors"

var (
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrNotClockedIn    = errors.New("no active attendance record")
	ErrAlreadyOnBreak  = errors.New("a break is already in progress")
	ErrBreaksExhausted = errors.New("both breaks already used")
	ErrNoActiveBreak   = errors.New("no active break to end")
)
