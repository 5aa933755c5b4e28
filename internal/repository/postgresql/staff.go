package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffgate/attendance-gate-go/internal/domain/staff"
	"github.com/staffgate/attendance-gate-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

// Create implements staff.StaffRepository.
func (r *staffRepository) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staffs (id, name, normalized_name, pin_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.NormalizedName,
		s.PINHash,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staff.Staff{}, staff.ErrNameTaken
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return s, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, normalized_name, pin_hash, created_at, updated_at
		FROM staffs
		WHERE id = $1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.NormalizedName, &s.PINHash, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by id: %w", err)
	}

	return s, nil
}

// GetByNormalizedName implements staff.StaffRepository.
func (r *staffRepository) GetByNormalizedName(ctx context.Context, normalizedName string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, normalized_name, pin_hash, created_at, updated_at
		FROM staffs
		WHERE normalized_name = $1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, normalizedName).Scan(
		&s.ID, &s.Name, &s.NormalizedName, &s.PINHash, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by name: %w", err)
	}

	return s, nil
}

// List implements staff.StaffRepository.
func (r *staffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, normalized_name, pin_hash, created_at, updated_at
		FROM staffs
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var staffs []staff.Staff
	for rows.Next() {
		var s staff.Staff
		if err := rows.Scan(
			&s.ID, &s.Name, &s.NormalizedName, &s.PINHash, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staffs = append(staffs, s)
	}

	return staffs, rows.Err()
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}
