package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/staffgate/attendance-gate-go/internal/config"
	"github.com/staffgate/attendance-gate-go/internal/domain/attendance"
	"github.com/staffgate/attendance-gate-go/internal/domain/staff"
	"github.com/staffgate/attendance-gate-go/internal/pkg/email"
	"github.com/staffgate/attendance-gate-go/internal/pkg/formapi"
)

// RolloverJobs sweeps unclosed prior-day sessions and applies the
// configured rollover policy.
type RolloverJobs struct {
	staffRepo  staff.StaffRepository
	stateStore *attendance.StateStore
	subRepo    attendance.SubmissionRepository
	formClient *formapi.Client
	emailSvc   email.EmailService
	cfg        config.RolloverConfig
}

func NewRolloverJobs(
	staffRepo staff.StaffRepository,
	stateStore *attendance.StateStore,
	subRepo attendance.SubmissionRepository,
	formClient *formapi.Client,
	emailSvc email.EmailService,
	cfg config.RolloverConfig,
) *RolloverJobs {
	return &RolloverJobs{
		staffRepo:  staffRepo,
		stateStore: stateStore,
		subRepo:    subRepo,
		formClient: formClient,
		emailSvc:   emailSvc,
		cfg:        cfg,
	}
}

func (j *RolloverJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.Register("sweep_stale_sessions", interval, j.SweepStaleSessions)
}

// SweepStaleSessions finds staff whose state carries a check-in from a
// previous day with no check-out. Policy "reset" only reports them; the
// state machine already supersedes the session on the next check-in.
// Policy "flag" closes each session with zero work minutes, dispatches
// the closure record, and emails a summary when an alert address is set.
func (j *RolloverJobs) SweepStaleSessions(ctx context.Context) error {
	today := time.Now().UTC()

	staffs, err := j.staffRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}

	var stale []email.StaleSession

	for _, s := range staffs {
		state, err := j.stateStore.Load(ctx, s.ID)
		if err != nil {
			slog.Error("Sweep: failed to load state", "staff_id", s.ID, "error", err)
			continue
		}

		if !attendance.HasStaleSession(state, today) {
			continue
		}

		stale = append(stale, email.StaleSession{
			StaffName:   s.Name,
			Date:        state.LastActionDate,
			CheckInTime: state.CheckInTime,
		})

		if j.cfg.Policy != "flag" {
			slog.Warn("Sweep: unclosed session left from previous day",
				"staff_id", s.ID, "date", state.LastActionDate, "policy", j.cfg.Policy)
			continue
		}

		if err := j.closeStaleSession(ctx, s, state); err != nil {
			slog.Error("Sweep: failed to close stale session", "staff_id", s.ID, "error", err)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	slog.Info("Sweep: stale sessions found", "count", len(stale), "policy", j.cfg.Policy)

	if j.cfg.Policy == "flag" && j.cfg.AlertEmail != "" && j.emailSvc != nil {
		if err := j.emailSvc.SendStaleSessionSummary(j.cfg.AlertEmail, stale); err != nil {
			slog.Error("Sweep: failed to send summary email", "error", err)
		}
	}

	return nil
}

// closeStaleSession records a zero-duration check-out for the stale day
// and resets the cycle.
func (j *RolloverJobs) closeStaleSession(ctx context.Context, s staff.Staff, state attendance.State) error {
	zero := 0
	record := attendance.Record{
		StaffName:    s.Name,
		Action:       attendance.ActionCheckOut,
		Remark:       attendance.RemarkNoGPS,
		Location:     attendance.NoLocation,
		Date:         state.LastActionDate,
		CheckInTime:  state.CheckInTime,
		CheckOutTime: state.CheckInTime,
		WorkMinutes:  &zero,
	}

	dispatchErr := j.formClient.SubmitRecord(ctx, record)

	submission := attendance.Submission{
		ID:           uuid.NewString(),
		StaffID:      s.ID,
		StaffName:    s.Name,
		Action:       string(record.Action),
		Remark:       string(record.Remark),
		Location:     record.Location,
		Date:         record.Date,
		CheckInTime:  record.CheckInTime,
		CheckOutTime: record.CheckOutTime,
		WorkMinutes:  &zero,
		Dispatched:   dispatchErr == nil,
	}
	if dispatchErr != nil {
		msg := dispatchErr.Error()
		submission.DispatchError = &msg
	}
	if _, err := j.subRepo.Create(ctx, submission); err != nil {
		slog.Error("Sweep: failed to log closure submission", "staff_id", s.ID, "error", err)
	}

	state.CheckOutTime = state.CheckInTime
	state.LastActionDate = ""
	if err := j.stateStore.Save(ctx, s.ID, state); err != nil {
		return fmt.Errorf("failed to save closed state: %w", err)
	}

	return nil
}
