package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByNormalizedName(ctx context.Context, normalizedName string) (Staff, error)
	List(ctx context.Context) ([]Staff, error)
}
