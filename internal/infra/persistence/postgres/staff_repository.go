package postgres

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (repo *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	var staffM model.StaffModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&staffM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by id")
	}

	return toStaffDomain(&staffM), nil
}

func (repo *staffRepository) List(ctx context.Context) ([]*entity.Staff, error) {
	var staffMs []model.StaffModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&staffMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list staffs")
	}

	staffs := make([]*entity.Staff, 0, len(staffMs))
	for i := range staffMs {
		staffs = append(staffs, toStaffDomain(&staffMs[i]))
	}

	return staffs, nil
}

func (repo *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	staffM := fromStaffDomain(staff)
	staffM.Version = 0

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required staff information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff")
	}

	*staff = *toStaffDomain(staffM)

	return nil
}

// Save is a compare-and-swap on the version column. A miss is told apart from a
// deleted row by a follow-up existence check.
func (repo *staffRepository) Save(ctx context.Context, staff *entity.Staff) error {
	staffM := fromStaffDomain(staff)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("id = ? AND version = ?", staff.ID, staff.Version).
		Updates(map[string]any{
			"staff_name":   staffM.StaffName,
			"email":        staffM.Email,
			"phone_number": staffM.PhoneNumber,
			"position":     staffM.Position,
			"month":        staffM.Month,
			"day":          staffM.Day,
			"year":         staffM.Year,
			"work_done":    staffM.WorkDone,
			"version":      staff.Version + 1,
			"updated_at":   now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save staff")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.StaffModel{}).Where("id = ?", staff.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check staff existence")
		}
		if count == 0 {
			return repository.ErrStaffNotFound
		}

		return repository.ErrStaleVersion
	}

	staff.Version++
	staff.UpdatedAt = now

	return nil
}

func (repo *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StaffModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete staff")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStaffDomain(data *model.StaffModel) *entity.Staff {
	entries := make([]entity.WorkDoneEntry, 0, len(data.WorkDone))
	for _, e := range data.WorkDone {
		entries = append(entries, entity.WorkDoneEntry{
			ID:        e.ID,
			WorkDone:  e.WorkDone,
			Charge:    e.Charge,
			DateParts: entity.DateParts{Month: e.Month, Day: e.Day, Year: e.Year},
		})
	}

	return &entity.Staff{
		ID:          data.ID,
		StaffName:   data.StaffName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Position:    data.Position,
		DateParts:   toDatePartsDomain(data.DateParts),
		WorkDone:    entries,
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromStaffDomain(data *entity.Staff) *model.StaffModel {
	entries := make(datatypes.JSONSlice[model.WorkDoneEntryModel], 0, len(data.WorkDone))
	for _, e := range data.WorkDone {
		entries = append(entries, model.WorkDoneEntryModel{
			ID:       e.ID,
			WorkDone: e.WorkDone,
			Charge:   e.Charge,
			Month:    e.Month,
			Day:      e.Day,
			Year:     e.Year,
		})
	}

	return &model.StaffModel{
		Base: model.Base{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
		StaffName:   data.StaffName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Position:    data.Position,
		DateParts:   fromDatePartsDomain(data.DateParts),
		WorkDone:    entries,
		Version:     data.Version,
	}
}
