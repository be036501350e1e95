package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWorkdoneInput defines a standalone work log entry.
type CreateWorkdoneInput struct {
	WorkDone string
	Charge   string
	Date     entity.DateParts
}

// UpdateWorkdoneInput holds the fields to change; nil fields are kept.
type UpdateWorkdoneInput struct {
	WorkDone *string
	Charge   *string
	Month    *string
	Day      *string
	Year     *string
}

// WorkdoneUsecase defines operations on the standalone work log.
type WorkdoneUsecase interface {
	CreateWorkdone(ctx context.Context, input *CreateWorkdoneInput) (*entity.Workdone, error)
	GetWorkdone(ctx context.Context, id uuid.UUID) (*entity.Workdone, error)
	ListWorkdones(ctx context.Context) ([]*entity.Workdone, error)
	UpdateWorkdone(ctx context.Context, id uuid.UUID, input *UpdateWorkdoneInput) (*entity.Workdone, error)
	DeleteWorkdone(ctx context.Context, id uuid.UUID) error
}
