package staff

import "context"

// StaffService defines staff identity operations
type StaffService interface {
	// Register creates a staff identity for a name and issues a token.
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login issues a token for an existing staff name.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
