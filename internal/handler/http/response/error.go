package response

import (
	"errors"
	"net/http"

	"github.com/staffgate/attendance-gate-go/internal/domain/attendance"
	"github.com/staffgate/attendance-gate-go/internal/domain/history"
	"github.com/staffgate/attendance-gate-go/internal/domain/staff"
	"github.com/staffgate/attendance-gate-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors. The two confirmation gates are conflicts:
	// the request is well formed but cannot proceed without an explicit
	// acknowledgement from the caller.
	case errors.Is(err, attendance.ErrOutsideGeofence):
		ConflictWithCode(w, "OUT_OF_RANGE", "Position is outside the permitted radius; confirm to proceed")
	case errors.Is(err, attendance.ErrLocationUnverified):
		ConflictWithCode(w, "LOCATION_UNVERIFIED", "No position was provided; confirm to proceed without one")
	case errors.Is(err, attendance.ErrStaleSessionOpen):
		Conflict(w, "A previous session is still open and pending review")
	case errors.Is(err, attendance.ErrStateNotFound):
		NotFound(w, "No attendance state found")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrNameTaken):
		Conflict(w, "Staff name is already registered")
	case errors.Is(err, staff.ErrPINRequired):
		Unauthorized(w, "This staff name is PIN protected")
	case errors.Is(err, staff.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN")

	// History domain errors
	case errors.Is(err, history.ErrSourceUnavailable):
		ServiceUnavailable(w, "History source is unavailable")
	case errors.Is(err, history.ErrSourceNotConfigured):
		ServiceUnavailable(w, "History source is not configured")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
