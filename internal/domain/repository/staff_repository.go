package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrStaffNotFound is returned when a staff member is not found.
	ErrStaffNotFound = errors.New("staff not found")
	// ErrStaleVersion is returned when a staff aggregate was changed since it was loaded.
	ErrStaleVersion = errors.New("staff version is stale")
)

// StaffRepository defines persistence operations for the staff aggregate.
type StaffRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	List(ctx context.Context) ([]*entity.Staff, error)
	Create(ctx context.Context, staff *entity.Staff) error

	// Save rewrites the whole aggregate, including its work log, only if the stored
	// version still equals staff.Version. On success staff.Version is incremented.
	// It returns ErrStaleVersion when another write got there first.
	Save(ctx context.Context, staff *entity.Staff) error

	Delete(ctx context.Context, id uuid.UUID) error
}
