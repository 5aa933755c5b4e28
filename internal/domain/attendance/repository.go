package attendance

import "context"

// SubmissionRepository is the local dispatch log for records handed to the
// external sink.
type SubmissionRepository interface {
	Create(ctx context.Context, submission Submission) (Submission, error)
	ListByStaff(ctx context.Context, staffID string, limit int) ([]Submission, error)
}
