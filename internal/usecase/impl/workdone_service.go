package impl

import (
	"context"
	"log/slog"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workdoneService implements the WorkdoneUsecase interface.
type workdoneService struct {
	workdoneRepo repository.WorkdoneRepository
	logger       *slog.Logger
}

// WorkdoneServiceParams holds dependencies for WorkdoneService, injected by Fx.
type WorkdoneServiceParams struct {
	fx.In

	WorkdoneRepo repository.WorkdoneRepository
	Logger       *slog.Logger
}

// NewWorkdoneService is the constructor for workdoneService.
func NewWorkdoneService(params WorkdoneServiceParams) usecase.WorkdoneUsecase {
	return &workdoneService{
		workdoneRepo: params.WorkdoneRepo,
		logger:       params.Logger,
	}
}

func (srv *workdoneService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *workdoneService) CreateWorkdone(ctx context.Context, input *usecase.CreateWorkdoneInput) (*entity.Workdone, error) {
	workdone := &entity.Workdone{
		WorkDone:  input.WorkDone,
		Charge:    input.Charge,
		DateParts: input.Date,
	}

	if err := srv.workdoneRepo.Create(ctx, workdone); err != nil {
		return nil, errors.Wrap(err, "failed to create workdone")
	}

	srv.log(ctx).Info("Workdone created", slog.String("workdoneID", workdone.ID.String()))

	return workdone, nil
}

func (srv *workdoneService) GetWorkdone(ctx context.Context, id uuid.UUID) (*entity.Workdone, error) {
	workdone, err := srv.workdoneRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkdoneNotFound) {
			return nil, domainerrors.ErrWorkDoneNotFound.WrapMessage("workdone not found")
		}

		return nil, errors.Wrap(err, "failed to find workdone")
	}

	return workdone, nil
}

func (srv *workdoneService) ListWorkdones(ctx context.Context) ([]*entity.Workdone, error) {
	workdones, err := srv.workdoneRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workdones")
	}

	return workdones, nil
}

func (srv *workdoneService) UpdateWorkdone(ctx context.Context, id uuid.UUID, input *usecase.UpdateWorkdoneInput) (*entity.Workdone, error) {
	workdone, err := srv.GetWorkdone(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.WorkDone != nil {
		workdone.WorkDone = *input.WorkDone
	}
	if input.Charge != nil {
		workdone.Charge = *input.Charge
	}
	if input.Month != nil {
		workdone.Month = *input.Month
	}
	if input.Day != nil {
		workdone.Day = *input.Day
	}
	if input.Year != nil {
		workdone.Year = *input.Year
	}

	if err := srv.workdoneRepo.Update(ctx, workdone); err != nil {
		if errors.Is(err, repository.ErrWorkdoneNotFound) {
			return nil, domainerrors.ErrWorkDoneNotFound.WrapMessage("workdone not found")
		}

		return nil, errors.Wrap(err, "failed to update workdone")
	}

	return workdone, nil
}

func (srv *workdoneService) DeleteWorkdone(ctx context.Context, id uuid.UUID) error {
	if err := srv.workdoneRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWorkdoneNotFound) {
			return domainerrors.ErrWorkDoneNotFound.WrapMessage("workdone not found")
		}

		return errors.Wrap(err, "failed to delete workdone")
	}

	return nil
}
