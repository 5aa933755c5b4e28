package staff

import (
	"github.com/staffgate/attendance-gate-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if r.PIN != "" && (len(r.PIN) < 4 || len(r.PIN) > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be between 4 and 12 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin,omitempty"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	StaffID     string `json:"staff_id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
