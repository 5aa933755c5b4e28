package cron

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/staffgate/attendance-gate-go/internal/config"
	"github.com/staffgate/attendance-gate-go/internal/domain/attendance"
	"github.com/staffgate/attendance-gate-go/internal/domain/staff"
	"github.com/staffgate/attendance-gate-go/internal/pkg/formapi"
	"github.com/staffgate/attendance-gate-go/internal/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listStaffRepo struct {
	members []staff.Staff
}

func (f *listStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	f.members = append(f.members, s)
	return s, nil
}

func (f *listStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	for _, s := range f.members {
		if s.ID == id {
			return s, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *listStaffRepo) GetByNormalizedName(ctx context.Context, normalizedName string) (staff.Staff, error) {
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *listStaffRepo) List(ctx context.Context) ([]staff.Staff, error) {
	return f.members, nil
}

type captureSubmissionRepo struct {
	created []attendance.Submission
}

func (f *captureSubmissionRepo) Create(ctx context.Context, s attendance.Submission) (attendance.Submission, error) {
	f.created = append(f.created, s)
	return s, nil
}

func (f *captureSubmissionRepo) ListByStaff(ctx context.Context, staffID string, limit int) ([]attendance.Submission, error) {
	return f.created, nil
}

func staleStateStore(t *testing.T, staffID string) *attendance.StateStore {
	t.Helper()

	store := attendance.NewStateStore(kvstore.NewMemoryStore())
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	require.NoError(t, store.Save(context.Background(), staffID, attendance.State{
		StaffName:      "Jane Tan",
		LastActionDate: yesterday,
		CheckInTime:    "09:00:00",
	}))
	return store
}

func TestSweepStaleSessions_FlagPolicyClosesSession(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer sink.Close()

	staffRepo := &listStaffRepo{members: []staff.Staff{{ID: "staff-1", Name: "Jane Tan"}}}
	subRepo := &captureSubmissionRepo{}
	store := staleStateStore(t, "staff-1")

	jobs := NewRolloverJobs(
		staffRepo,
		store,
		subRepo,
		formapi.NewClient(config.SinkConfig{URL: sink.URL, FieldMap: map[string]string{"action": "entry.1"}}, config.HistoryConfig{}),
		nil,
		config.RolloverConfig{Policy: "flag"},
	)

	require.NoError(t, jobs.SweepStaleSessions(context.Background()))

	state, err := store.Load(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.Empty(t, state.LastActionDate)
	assert.False(t, attendance.HasStaleSession(state, time.Now().UTC()))

	require.Len(t, subRepo.created, 1)
	assert.Equal(t, "Check-Out", subRepo.created[0].Action)
	require.NotNil(t, subRepo.created[0].WorkMinutes)
	assert.Equal(t, 0, *subRepo.created[0].WorkMinutes)
	assert.True(t, subRepo.created[0].Dispatched)
}

func TestSweepStaleSessions_ResetPolicyLeavesState(t *testing.T) {
	staffRepo := &listStaffRepo{members: []staff.Staff{{ID: "staff-1", Name: "Jane Tan"}}}
	subRepo := &captureSubmissionRepo{}
	store := staleStateStore(t, "staff-1")

	jobs := NewRolloverJobs(
		staffRepo,
		store,
		subRepo,
		formapi.NewClient(config.SinkConfig{URL: "http://unused.invalid"}, config.HistoryConfig{}),
		nil,
		config.RolloverConfig{Policy: "reset"},
	)

	require.NoError(t, jobs.SweepStaleSessions(context.Background()))

	state, err := store.Load(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.NotEmpty(t, state.LastActionDate)
	assert.Empty(t, subRepo.created)
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.Register("count", time.Hour, func(ctx context.Context) error {
		ran++
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 1, ran)
}
