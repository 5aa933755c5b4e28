package history

import (
	"github.com/staffgate/attendance-gate-go/internal/pkg/validator"
)

// Row is one attendance record from the external history source, with the
// date re-parsed into a canonical form.
type Row struct {
	Name           string `json:"name"`
	Date           string `json:"date"` // canonical "2006-01-02"
	CheckInTime    string `json:"check_in_time"`
	CheckOutTime   string `json:"check_out_time"`
	TotalWorkHours string `json:"total_work_hours"`
	WorkMinutes    string `json:"work_minutes"`
	Remark         string `json:"remark"`
	Location       string `json:"location"`
}

type Filter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListResponse struct {
	Month int   `json:"month"`
	Year  int   `json:"year"`
	Rows  []Row `json:"rows"`
}
