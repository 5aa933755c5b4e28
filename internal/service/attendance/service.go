package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/staffgate/attendance-gate-go/internal/config"
	"github.com/staffgate/attendance-gate-go/internal/domain/attendance"
	"github.com/staffgate/attendance-gate-go/internal/domain/geofence"
	"github.com/staffgate/attendance-gate-go/internal/domain/staff"
	"github.com/staffgate/attendance-gate-go/internal/pkg/formapi"
	"github.com/staffgate/attendance-gate-go/internal/pkg/sse"
)

type AttendanceServiceImpl struct {
	gate           geofence.Gate
	lunchMin       int
	rolloverPolicy string
	stateStore     *attendance.StateStore
	staff.StaffRepository
	attendance.SubmissionRepository
	formClient *formapi.Client
	hub        *sse.Hub
	now        func() time.Time
}

func NewAttendanceService(
	cfg config.GateConfig,
	rollover config.RolloverConfig,
	stateStore *attendance.StateStore,
	staffRepo staff.StaffRepository,
	submissionRepo attendance.SubmissionRepository,
	formClient *formapi.Client,
	hub *sse.Hub,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		gate: geofence.Gate{
			Office: geofence.Coordinate{
				Latitude:  cfg.OfficeLatitude,
				Longitude: cfg.OfficeLongitude,
			},
			RadiusMeters: cfg.RadiusMeters,
		},
		lunchMin:             cfg.LunchDeductionMin,
		rolloverPolicy:       rollover.Policy,
		stateStore:           stateStore,
		StaffRepository:      staffRepo,
		SubmissionRepository: submissionRepo,
		formClient:           formClient,
		hub:                  hub,
		now:                  time.Now,
	}
}

func staffIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	staffID, ok := claims["staff_id"].(string)
	if !ok || staffID == "" {
		return "", fmt.Errorf("staff_id claim is missing or invalid")
	}

	return staffID, nil
}

// Check implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Check(ctx context.Context, req attendance.CheckRequest) (attendance.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckResponse{}, err
	}

	staffID, err := staffIDFromContext(ctx)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	member, err := a.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	// Geofence evaluation. Three outcomes: verified in range, out of
	// range, and no position at all; the latter two proceed only with
	// an explicit confirmation.
	remark := attendance.RemarkNoGPS
	location := attendance.NoLocation
	var distance *float64

	if req.HasCoordinate() {
		ev := a.gate.Evaluate(geofence.Coordinate{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		})
		distance = &ev.DistanceMeters

		if ev.InRange {
			remark = attendance.RemarkUsedGPS
			location = fmt.Sprintf("Latitude: %v, Longitude: %v", *req.Latitude, *req.Longitude)
		} else if !req.ConfirmOutOfRange {
			return attendance.CheckResponse{}, attendance.ErrOutsideGeofence
		}
	} else if !req.ConfirmNoLocation {
		return attendance.CheckResponse{}, attendance.ErrLocationUnverified
	}

	now := a.now()

	state, err := a.stateStore.Load(ctx, staffID)
	if err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to load attendance state: %w", err)
	}

	if attendance.HasStaleSession(state, now) {
		// Under the "flag" policy the stale session stays open until the
		// sweep closes it; under "reset" a fresh check-in supersedes it.
		if a.rolloverPolicy == "flag" {
			return attendance.CheckResponse{}, attendance.ErrStaleSessionOpen
		}
		slog.Warn("Unclosed session superseded by new check-in",
			"staff_id", staffID, "stale_date", state.LastActionDate)
	}

	state.StaffName = member.Name
	state, action := attendance.Apply(state, now)
	state.PreviousLocation = attendance.AccumulateLocation(state.PreviousLocation, location)

	var workMinutes *int
	var workHours *float64
	if action == attendance.ActionCheckOut && state.CheckInTime != "" {
		minutes, err := attendance.WorkMinutes(state.CheckInTime, state.CheckOutTime, a.lunchMin)
		if err != nil {
			slog.Error("Failed to compute work minutes", "staff_id", staffID, "error", err)
		} else {
			hours := attendance.WorkHours(minutes)
			workMinutes = &minutes
			workHours = &hours
		}
	}

	// Local state advances before dispatch and is not rolled back if the
	// remote delivery fails.
	if err := a.stateStore.Save(ctx, staffID, state); err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to save attendance state: %w", err)
	}

	record := attendance.Record{
		StaffName:    member.Name,
		Action:       action,
		Remark:       remark,
		Location:     location,
		Date:         now.Format("2006-01-02"),
		CheckInTime:  state.CheckInTime,
		CheckOutTime: state.CheckOutTime,
		WorkMinutes:  workMinutes,
	}

	dispatchErr := a.formClient.SubmitRecord(ctx, record)
	if dispatchErr != nil {
		slog.Error("Record dispatch failed", "staff_id", staffID, "action", action, "error", dispatchErr)
	}

	submission := attendance.Submission{
		ID:           uuid.NewString(),
		StaffID:      staffID,
		StaffName:    member.Name,
		Action:       string(action),
		Remark:       string(remark),
		Location:     location,
		Date:         record.Date,
		CheckInTime:  state.CheckInTime,
		CheckOutTime: state.CheckOutTime,
		WorkMinutes:  workMinutes,
		Dispatched:   dispatchErr == nil,
	}
	if dispatchErr != nil {
		msg := dispatchErr.Error()
		submission.DispatchError = &msg
	}

	if _, err := a.SubmissionRepository.Create(ctx, submission); err != nil {
		slog.Error("Failed to log submission", "staff_id", staffID, "error", err)
	}

	nextPhase := attendance.Derive(state, now)

	if a.hub != nil {
		a.hub.Publish(staffID, sse.Event{
			StaffID: staffID,
			Event:   sse.EventStateChange,
			Data: map[string]interface{}{
				"action":     string(action),
				"next_phase": string(nextPhase),
				"dispatched": dispatchErr == nil,
			},
		})
	}

	return attendance.CheckResponse{
		StaffName:      member.Name,
		Action:         string(action),
		Remark:         string(remark),
		Location:       location,
		Date:           record.Date,
		CheckInTime:    state.CheckInTime,
		CheckOutTime:   state.CheckOutTime,
		WorkMinutes:    workMinutes,
		WorkHours:      workHours,
		DistanceMeters: distance,
		Dispatched:     dispatchErr == nil,
		NextPhase:      string(nextPhase),
	}, nil
}

// Status implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Status(ctx context.Context) (attendance.StatusResponse, error) {
	staffID, err := staffIDFromContext(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	member, err := a.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	now := a.now()

	state, err := a.stateStore.Load(ctx, staffID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to load attendance state: %w", err)
	}

	phase := attendance.Derive(state, now)

	nextAction := "check_in"
	if phase == attendance.NeedsCheckOut {
		nextAction = "check_out"
	}

	resp := attendance.StatusResponse{
		StaffName:    member.Name,
		Date:         now.Format("2006-01-02"),
		Phase:        string(phase),
		NextAction:   nextAction,
		CheckInTime:  state.CheckInTime,
		CheckOutTime: state.CheckOutTime,
	}

	if attendance.HasStaleSession(state, now) {
		resp.HasStaleSession = true
		resp.StaleSessionDate = state.LastActionDate
	}

	return resp, nil
}
