package profile

import (
	"strings"
	"time"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/user"
)

// Profile carries the employee-facing fields of an account, including the
// schedule the lateness computation reads at clock-in.
type Profile struct {
	UserID            string
	FirstName         string
	LastName          string
	Role              user.Role
	ExpectedStartTime *string // "HH:MM:SS" time of day, nil when unscheduled
	GraceMinutes      int
	AvatarURL         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DisplayName is the name shown in reports and dropdowns.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.UserID
	}
	return name
}

// IsAdmin reports whether the profile can access other employees' records.
func (p *Profile) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}
