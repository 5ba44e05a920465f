package report

import (
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/attendance"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/validator"
)

// Row is one attendance record joined with the employee's display name.
type Row struct {
	attendance.Attendance
	EmployeeName string
}

// Filter narrows the admin report. The date range is applied only when both
// ends are present; a half-open range filters nothing.
type Filter struct {
	EmployeeID *string
	FromDate   *string // "YYYY-MM-DD"
	ToDate     *string // "YYYY-MM-DD"
	Page       int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.FromDate != nil {
		if _, ok := validator.IsValidDate(*f.FromDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be formatted as YYYY-MM-DD",
			})
		}
	}
	if f.ToDate != nil {
		if _, ok := validator.IsValidDate(*f.ToDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be formatted as YYYY-MM-DD",
			})
		}
	}
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RowResponse struct {
	attendance.AttendanceResponse
	UserID       string `json:"user_id"`
	EmployeeName string `json:"employee_name"`
}

type EmployeeOption struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type ReportResponse struct {
	Rows            []RowResponse    `json:"rows"`
	Page            int              `json:"page"`
	TotalPages      int              `json:"total_pages"`
	TotalItems      int              `json:"total_items"`
	RangeTotalHours float64          `json:"range_total_hours"`
	Employees       []EmployeeOption `json:"employees"`
}

// TodaySummary aggregates the acting user's records for the current
// calendar day. Worked minutes count open shifts as zero; late minutes sum
// the values frozen at each clock-in.
type TodaySummary struct {
	State         attendance.State `json:"state"`
	WorkedMinutes int              `json:"worked_minutes"`
	LateMinutes   int              `json:"late_minutes"`
	IsLate        bool             `json:"is_late"`
}
