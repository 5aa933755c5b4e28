package staff

import (
	"context"
	"testing"

	"github.com/staffgate/attendance-gate-go/internal/domain/staff"
	"github.com/staffgate/attendance-gate-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	byNormalized map[string]staff.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{byNormalized: make(map[string]staff.Staff)}
}

func (f *fakeStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	if _, exists := f.byNormalized[s.NormalizedName]; exists {
		return staff.Staff{}, staff.ErrNameTaken
	}
	f.byNormalized[s.NormalizedName] = s
	return s, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	for _, s := range f.byNormalized {
		if s.ID == id {
			return s, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) GetByNormalizedName(ctx context.Context, normalizedName string) (staff.Staff, error) {
	s, ok := f.byNormalized[normalizedName]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) List(ctx context.Context) ([]staff.Staff, error) {
	out := make([]staff.Staff, 0, len(f.byNormalized))
	for _, s := range f.byNormalized {
		out = append(out, s)
	}
	return out, nil
}

func newService() (staff.StaffService, *fakeStaffRepo) {
	repo := newFakeStaffRepo()
	return NewStaffService(repo, jwt.NewJWTService("test-secret", "24h")), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, staff.RegisterRequest{Name: "Jane Tan"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.StaffID)
	assert.NotEmpty(t, reg.AccessToken)

	// Name matching is case and whitespace insensitive.
	login, err := svc.Login(ctx, staff.LoginRequest{Name: "  JANE tan "})
	require.NoError(t, err)
	assert.Equal(t, reg.StaffID, login.StaffID)
}

func TestRegister_DuplicateName(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, staff.RegisterRequest{Name: "Jane Tan"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, staff.RegisterRequest{Name: "jane tan"})
	assert.ErrorIs(t, err, staff.ErrNameTaken)
}

func TestLogin_PINProtection(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, staff.RegisterRequest{Name: "Jane Tan", PIN: "4321"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, staff.LoginRequest{Name: "Jane Tan"})
	assert.ErrorIs(t, err, staff.ErrPINRequired)

	_, err = svc.Login(ctx, staff.LoginRequest{Name: "Jane Tan", PIN: "9999"})
	assert.ErrorIs(t, err, staff.ErrInvalidPIN)

	login, err := svc.Login(ctx, staff.LoginRequest{Name: "Jane Tan", PIN: "4321"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
}

func TestLogin_UnknownName(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Login(context.Background(), staff.LoginRequest{Name: "Nobody"})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register(context.Background(), staff.RegisterRequest{Name: "   "})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), staff.RegisterRequest{Name: "Jane", PIN: "12"})
	assert.Error(t, err)
}
