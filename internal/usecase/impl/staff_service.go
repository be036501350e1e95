package impl

import (
	"context"
	"log/slog"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errWorkDoneMissing stops a mutation when the addressed work log entry is gone.
var errWorkDoneMissing = errors.New("work done entry missing")

// staffService implements the StaffUsecase interface.
type staffService struct {
	staffRepo  repository.StaffRepository
	maxRetries int
	logger     *slog.Logger
}

// StaffServiceParams holds dependencies for StaffService, injected by Fx.
type StaffServiceParams struct {
	fx.In

	StaffRepo repository.StaffRepository
	Logger    *slog.Logger
}

// NewStaffService is the constructor for staffService.
func NewStaffService(params StaffServiceParams) usecase.StaffUsecase {
	return &staffService{
		staffRepo:  params.StaffRepo,
		maxRetries: constants.WorkDoneMaxRetries,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *staffService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *staffService) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*entity.Staff, error) {
	staff := &entity.Staff{
		StaffName:   input.StaffName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Position:    input.Position,
		DateParts:   input.Date,
		WorkDone:    []entity.WorkDoneEntry{},
	}

	if err := srv.staffRepo.Create(ctx, staff); err != nil {
		return nil, errors.Wrap(err, "failed to create staff")
	}

	srv.log(ctx).Info("Staff created", slog.String("staffID", staff.ID.String()))

	return staff, nil
}

func (srv *staffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	staff, err := srv.staffRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrStaffNotFound.WrapMessage("staff not found")
		}

		return nil, errors.Wrap(err, "failed to find staff")
	}

	return staff, nil
}

func (srv *staffService) ListStaffs(ctx context.Context) ([]*entity.Staff, error) {
	staffs, err := srv.staffRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staffs")
	}

	return staffs, nil
}

func (srv *staffService) UpdateStaff(ctx context.Context, id uuid.UUID, input *usecase.UpdateStaffInput) (*entity.Staff, error) {
	return srv.mutate(ctx, id, func(staff *entity.Staff) error {
		applyStaffUpdates(staff, input)

		return nil
	})
}

func applyStaffUpdates(staff *entity.Staff, input *usecase.UpdateStaffInput) {
	if input.StaffName != nil {
		staff.StaffName = *input.StaffName
	}
	if input.Email != nil {
		staff.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		staff.PhoneNumber = *input.PhoneNumber
	}
	if input.Position != nil {
		staff.Position = *input.Position
	}
	if input.Month != nil {
		staff.Month = *input.Month
	}
	if input.Day != nil {
		staff.Day = *input.Day
	}
	if input.Year != nil {
		staff.Year = *input.Year
	}
}

func (srv *staffService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	if err := srv.staffRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return domainerrors.ErrStaffNotFound.WrapMessage("staff not found")
		}

		return errors.Wrap(err, "failed to delete staff")
	}

	srv.log(ctx).Info("Staff deleted", slog.String("staffID", id.String()))

	return nil
}

func (srv *staffService) AddWorkDone(ctx context.Context, staffID uuid.UUID, input *usecase.AddWorkDoneInput) (*entity.Staff, error) {
	return srv.mutate(ctx, staffID, func(staff *entity.Staff) error {
		staff.AddWorkDone(entity.WorkDoneEntry{
			WorkDone:  input.WorkDone,
			Charge:    input.Charge,
			DateParts: input.Date,
		})

		return nil
	})
}

func (srv *staffService) EditWorkDone(ctx context.Context, staffID, workID uuid.UUID, patch entity.WorkDonePatch) (*entity.Staff, error) {
	return srv.mutate(ctx, staffID, func(staff *entity.Staff) error {
		if _, ok := staff.EditWorkDone(workID, patch); !ok {
			return errWorkDoneMissing
		}

		return nil
	})
}

func (srv *staffService) DeleteWorkDone(ctx context.Context, staffID, workID uuid.UUID, strategy entity.RemovalStrategy) (*entity.Staff, error) {
	return srv.mutate(ctx, staffID, func(staff *entity.Staff) error {
		if !staff.RemoveWorkDone(workID, strategy) {
			return errWorkDoneMissing
		}

		return nil
	})
}

// mutate loads the staff aggregate, applies fn and saves it guarded by the loaded version.
// A stale version reloads and reapplies fn, up to maxRetries attempts.
func (srv *staffService) mutate(ctx context.Context, id uuid.UUID, fn func(staff *entity.Staff) error) (*entity.Staff, error) {
	for attempt := 1; attempt <= srv.maxRetries; attempt++ {
		staff, err := srv.GetStaff(ctx, id)
		if err != nil {
			return nil, err
		}

		if err := fn(staff); err != nil {
			if errors.Is(err, errWorkDoneMissing) {
				return nil, domainerrors.ErrWorkDoneNotFound.WrapMessage("work done entry not found")
			}

			return nil, err
		}

		err = srv.staffRepo.Save(ctx, staff)
		switch {
		case err == nil:
			return staff, nil
		case errors.Is(err, repository.ErrStaleVersion):
			srv.log(ctx).Warn("Staff changed concurrently, retrying",
				slog.String("staffID", id.String()),
				slog.Int("attempt", attempt),
			)
		case errors.Is(err, repository.ErrStaffNotFound):
			return nil, domainerrors.ErrStaffNotFound.WrapMessage("staff removed during update")
		default:
			return nil, errors.Wrap(err, "failed to save staff")
		}
	}

	return nil, domainerrors.ErrConcurrentModification.WrapMessage("staff " + id.String())
}
