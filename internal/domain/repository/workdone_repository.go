package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWorkdoneNotFound is returned when a standalone work log entry is not found.
var ErrWorkdoneNotFound = errors.New("workdone not found")

// WorkdoneRepository defines persistence operations for the standalone work log.
type WorkdoneRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workdone, error)
	List(ctx context.Context) ([]*entity.Workdone, error)
	Create(ctx context.Context, workdone *entity.Workdone) error
	Update(ctx context.Context, workdone *entity.Workdone) error
	Delete(ctx context.Context, id uuid.UUID) error
}
