package attendance

import "context"

// AttendanceService defines business logic for the attendance gate
type AttendanceService interface {
	// Check runs the gate pipeline for the authenticated staff: geofence
	// evaluation, confirmation gates, state transition, record dispatch.
	Check(ctx context.Context, req CheckRequest) (CheckResponse, error)

	// Status recomputes the current cycle phase for the authenticated staff.
	Status(ctx context.Context) (StatusResponse, error)
}
