package postgresql

import (
	"context"
	"fmt"

	"github.com/staffgate/attendance-gate-go/internal/domain/attendance"
	"github.com/staffgate/attendance-gate-go/internal/pkg/database"
)

type submissionRepository struct {
	db *database.DB
}

// Create implements attendance.SubmissionRepository.
func (r *submissionRepository) Create(ctx context.Context, submission attendance.Submission) (attendance.Submission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO submissions (
			id, staff_id, staff_name, action, remark, location,
			date, check_in_time, check_out_time, work_minutes,
			dispatched, dispatch_error
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		submission.ID,
		submission.StaffID,
		submission.StaffName,
		submission.Action,
		submission.Remark,
		submission.Location,
		submission.Date,
		submission.CheckInTime,
		submission.CheckOutTime,
		submission.WorkMinutes,
		submission.Dispatched,
		submission.DispatchError,
	).Scan(&submission.CreatedAt)

	if err != nil {
		return attendance.Submission{}, fmt.Errorf("failed to create submission: %w", err)
	}

	return submission, nil
}

// ListByStaff implements attendance.SubmissionRepository.
func (r *submissionRepository) ListByStaff(ctx context.Context, staffID string, limit int) ([]attendance.Submission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, staff_name, action, remark, location,
			   date, check_in_time, check_out_time, work_minutes,
			   dispatched, dispatch_error, created_at
		FROM submissions
		WHERE staff_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, staffID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []attendance.Submission
	for rows.Next() {
		var s attendance.Submission
		if err := rows.Scan(
			&s.ID, &s.StaffID, &s.StaffName, &s.Action, &s.Remark, &s.Location,
			&s.Date, &s.CheckInTime, &s.CheckOutTime, &s.WorkMinutes,
			&s.Dispatched, &s.DispatchError, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

func NewSubmissionRepository(db *database.DB) attendance.SubmissionRepository {
	return &submissionRepository{db: db}
}
