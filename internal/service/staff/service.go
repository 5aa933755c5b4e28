package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffgate/attendance-gate-go/internal/domain/staff"
	"github.com/staffgate/attendance-gate-go/internal/pkg/jwt"
	"github.com/staffgate/attendance-gate-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type StaffServiceImpl struct {
	staff.StaffRepository
	jwtService jwt.Service
}

func NewStaffService(staffRepo staff.StaffRepository, jwtService jwt.Service) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepo,
		jwtService:      jwtService,
	}
}

// Register implements staff.StaffService.
func (s *StaffServiceImpl) Register(ctx context.Context, req staff.RegisterRequest) (staff.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.TokenResponse{}, err
	}

	member := staff.Staff{
		ID:             uuid.NewString(),
		Name:           req.Name,
		NormalizedName: validator.NormalizeName(req.Name),
	}

	if req.PIN != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
		if err != nil {
			return staff.TokenResponse{}, fmt.Errorf("failed to hash PIN: %w", err)
		}
		hashStr := string(hash)
		member.PINHash = &hashStr
	}

	created, err := s.StaffRepository.Create(ctx, member)
	if err != nil {
		return staff.TokenResponse{}, err
	}

	return s.issueToken(created)
}

// Login implements staff.StaffService.
func (s *StaffServiceImpl) Login(ctx context.Context, req staff.LoginRequest) (staff.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.TokenResponse{}, err
	}

	member, err := s.StaffRepository.GetByNormalizedName(ctx, validator.NormalizeName(req.Name))
	if err != nil {
		return staff.TokenResponse{}, err
	}

	if member.HasPIN() {
		if req.PIN == "" {
			return staff.TokenResponse{}, staff.ErrPINRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*member.PINHash), []byte(req.PIN)); err != nil {
			return staff.TokenResponse{}, staff.ErrInvalidPIN
		}
	}

	return s.issueToken(member)
}

func (s *StaffServiceImpl) issueToken(member staff.Staff) (staff.TokenResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(member.ID, member.Name)
	if err != nil {
		return staff.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return staff.TokenResponse{
		StaffID:     member.ID,
		Name:        member.Name,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
