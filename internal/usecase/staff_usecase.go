package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStaffInput defines the data required to add a staff member.
type CreateStaffInput struct {
	StaffName   string
	Email       string
	PhoneNumber string
	Position    string
	Date        entity.DateParts
}

// UpdateStaffInput holds the fields to change; nil fields are kept.
type UpdateStaffInput struct {
	StaffName   *string
	Email       *string
	PhoneNumber *string
	Position    *string
	Month       *string
	Day         *string
	Year        *string
}

// AddWorkDoneInput is a new entry of a staff member's work log.
type AddWorkDoneInput struct {
	WorkDone string
	Charge   float64
	Date     entity.DateParts
}

// StaffUsecase defines operations on staff members and their embedded work log.
type StaffUsecase interface {
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error)
	GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	ListStaffs(ctx context.Context) ([]*entity.Staff, error)
	UpdateStaff(ctx context.Context, id uuid.UUID, input *UpdateStaffInput) (*entity.Staff, error)
	DeleteStaff(ctx context.Context, id uuid.UUID) error

	AddWorkDone(ctx context.Context, staffID uuid.UUID, input *AddWorkDoneInput) (*entity.Staff, error)
	EditWorkDone(ctx context.Context, staffID, workID uuid.UUID, patch entity.WorkDonePatch) (*entity.Staff, error)
	DeleteWorkDone(ctx context.Context, staffID, workID uuid.UUID, strategy entity.RemovalStrategy) (*entity.Staff, error)
}
