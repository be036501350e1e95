package postgres

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type workdoneRepository struct {
	db *gorm.DB
}

// NewWorkdoneRepository is the constructor for workdoneRepository.
func NewWorkdoneRepository(db *gorm.DB) repository.WorkdoneRepository {
	return &workdoneRepository{db: db}
}

func (repo *workdoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workdone, error) {
	var workdoneM model.WorkdoneModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&workdoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkdoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find workdone by id")
	}

	return toWorkdoneDomain(&workdoneM), nil
}

func (repo *workdoneRepository) List(ctx context.Context) ([]*entity.Workdone, error) {
	var workdoneMs []model.WorkdoneModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&workdoneMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workdones")
	}

	workdones := make([]*entity.Workdone, 0, len(workdoneMs))
	for i := range workdoneMs {
		workdones = append(workdones, toWorkdoneDomain(&workdoneMs[i]))
	}

	return workdones, nil
}

func (repo *workdoneRepository) Create(ctx context.Context, workdone *entity.Workdone) error {
	workdoneM := fromWorkdoneDomain(workdone)
	if err := repo.db.WithContext(ctx).Create(workdoneM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required workdone information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workdone")
	}

	*workdone = *toWorkdoneDomain(workdoneM)

	return nil
}

func (repo *workdoneRepository) Update(ctx context.Context, workdone *entity.Workdone) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkdoneModel{}).
		Where("id = ?", workdone.ID).
		Select("work_done", "charge", "month", "day", "year").
		Updates(fromWorkdoneDomain(workdone))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update workdone")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkdoneNotFound
	}

	return nil
}

func (repo *workdoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.WorkdoneModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete workdone")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkdoneNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWorkdoneDomain(data *model.WorkdoneModel) *entity.Workdone {
	return &entity.Workdone{
		ID:        data.ID,
		WorkDone:  data.WorkDone,
		Charge:    data.Charge,
		DateParts: toDatePartsDomain(data.DateParts),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromWorkdoneDomain(data *entity.Workdone) *model.WorkdoneModel {
	return &model.WorkdoneModel{
		Base: model.Base{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
		WorkDone:  data.WorkDone,
		Charge:    data.Charge,
		DateParts: fromDatePartsDomain(data.DateParts),
	}
}
