package attendance

import (
	"context"
	"fmt"

	"github.com/staffgate/attendance-gate-go/internal/pkg/kvstore"
)

// State field keys, namespaced per staff in the key-value store.
const (
	keyStaffName        = "staffName"
	keyLastActionDate   = "lastActionDate"
	keyCheckInTime      = "checkInTime"
	keyCheckOutTime     = "checkOutTime"
	keyPreviousLocation = "previousLocation"
)

// StateStore reads and writes per-staff State through the narrow key-value
// seam. All attendance logic stays a pure function of the State it returns.
type StateStore struct {
	store kvstore.Store
}

func NewStateStore(store kvstore.Store) *StateStore {
	return &StateStore{store: store}
}

func stateKey(staffID, field string) string {
	return fmt.Sprintf("staff:%s:%s", staffID, field)
}

// Load reads the full state for a staff; absent keys load as zero values.
func (s *StateStore) Load(ctx context.Context, staffID string) (State, error) {
	var state State
	fields := []struct {
		key string
		dst *string
	}{
		{keyStaffName, &state.StaffName},
		{keyLastActionDate, &state.LastActionDate},
		{keyCheckInTime, &state.CheckInTime},
		{keyCheckOutTime, &state.CheckOutTime},
		{keyPreviousLocation, &state.PreviousLocation},
	}

	for _, f := range fields {
		value, err := s.store.Get(ctx, stateKey(staffID, f.key))
		if err != nil {
			return State{}, fmt.Errorf("failed to read %s: %w", f.key, err)
		}
		*f.dst = value
	}
	return state, nil
}

// Save writes the full state back. Empty fields are deleted rather than
// stored, so absence keeps meaning "unset".
func (s *StateStore) Save(ctx context.Context, staffID string, state State) error {
	fields := map[string]string{
		keyStaffName:        state.StaffName,
		keyLastActionDate:   state.LastActionDate,
		keyCheckInTime:      state.CheckInTime,
		keyCheckOutTime:     state.CheckOutTime,
		keyPreviousLocation: state.PreviousLocation,
	}

	apply := func(ctx context.Context) error {
		for key, value := range fields {
			if value == "" {
				if err := s.store.Delete(ctx, stateKey(staffID, key)); err != nil {
					return fmt.Errorf("failed to clear %s: %w", key, err)
				}
				continue
			}
			if err := s.store.Set(ctx, stateKey(staffID, key), value); err != nil {
				return fmt.Errorf("failed to write %s: %w", key, err)
			}
		}
		return nil
	}

	// A partially written state would desync the cycle, so stores that can
	// group the field writes do.
	if atomic, ok := s.store.(kvstore.Atomic); ok {
		return atomic.Atomically(ctx, apply)
	}
	return apply(ctx)
}
