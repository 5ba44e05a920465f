package profile

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrPasswordMismatch = errors.New("current password does not match")
	ErrNoLocalPassword  = errors.New("account has no local password")
)
