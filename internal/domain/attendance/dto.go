package attendance

import (
	"github.com/staffgate/attendance-gate-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckRequest carries the observed position, if the location provider
// produced one, and the user's explicit confirmations for the two
// recoverable failure modes.
type CheckRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// ConfirmNoLocation acknowledges proceeding without any position.
	ConfirmNoLocation bool `json:"confirm_no_location,omitempty"`
	// ConfirmOutOfRange acknowledges proceeding from outside the geofence.
	ConfirmOutOfRange bool `json:"confirm_out_of_range,omitempty"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasCoordinate reports whether the request carries a full position.
func (r *CheckRequest) HasCoordinate() bool {
	return r.Latitude != nil && r.Longitude != nil
}

type CheckResponse struct {
	StaffName      string   `json:"staff_name"`
	Action         string   `json:"action"`
	Remark         string   `json:"remark"`
	Location       string   `json:"location"`
	Date           string   `json:"date"`
	CheckInTime    string   `json:"check_in_time,omitempty"`
	CheckOutTime   string   `json:"check_out_time,omitempty"`
	WorkMinutes    *int     `json:"work_minutes,omitempty"`
	WorkHours      *float64 `json:"work_hours,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	Dispatched     bool     `json:"dispatched"`
	NextPhase      string   `json:"next_phase"`
}

type StatusResponse struct {
	StaffName    string `json:"staff_name"`
	Date         string `json:"date"`
	Phase        string `json:"phase"`
	NextAction   string `json:"next_action"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`

	// Unclosed prior-day session, surfaced read-only per the rollover policy.
	HasStaleSession  bool   `json:"has_stale_session"`
	StaleSessionDate string `json:"stale_session_date,omitempty"`
}
