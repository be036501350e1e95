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

var recordEditableColumns = []string{
	"product_name", "quantity", "price_per_quantity", "total_amount",
	"overview", "customer", "staff", "month", "day", "year",
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

func (repo *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var recordM model.RecordModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find record by id")
	}

	return toRecordDomain(&recordM), nil
}

func (repo *recordRepository) List(ctx context.Context) ([]*entity.Record, error) {
	return repo.find(repo.db.WithContext(ctx).Order("created_at DESC"), "failed to list records")
}

func (repo *recordRepository) ListByProductName(ctx context.Context, productName string) ([]*entity.Record, error) {
	tx := repo.db.WithContext(ctx).Where("product_name = ?", productName).Order("created_at DESC")

	return repo.find(tx, "failed to list records by product name")
}

func (repo *recordRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.RecordModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count records")
	}

	return total, nil
}

func (repo *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	recordM := fromRecordDomain(record)
	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create record")
	}

	*record = *toRecordDomain(recordM)

	return nil
}

func (repo *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("id = ?", record.ID).
		Select(recordEditableColumns).
		Updates(fromRecordDomain(record))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (repo *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RecordModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

func (repo *recordRepository) find(tx *gorm.DB, msg string) ([]*entity.Record, error) {
	var recordMs []model.RecordModel
	if err := tx.Find(&recordMs).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	records := make([]*entity.Record, 0, len(recordMs))
	for i := range recordMs {
		records = append(records, toRecordDomain(&recordMs[i]))
	}

	return records, nil
}

// --- Mapper Functions ---

func toRecordDomain(data *model.RecordModel) *entity.Record {
	return &entity.Record{
		ID:               data.ID,
		ProductName:      data.ProductName,
		Quantity:         data.Quantity,
		PricePerQuantity: data.PricePerQuantity,
		TotalAmount:      data.TotalAmount,
		Overview:         data.Overview,
		Customer:         data.Customer,
		Staff:            data.Staff,
		StockID:          data.StockID,
		DateParts:        toDatePartsDomain(data.DateParts),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromRecordDomain(data *entity.Record) *model.RecordModel {
	return &model.RecordModel{
		Base: model.Base{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
		ProductName:      data.ProductName,
		Quantity:         data.Quantity,
		PricePerQuantity: data.PricePerQuantity,
		TotalAmount:      data.TotalAmount,
		Overview:         data.Overview,
		Customer:         data.Customer,
		Staff:            data.Staff,
		StockID:          data.StockID,
		DateParts:        fromDatePartsDomain(data.DateParts),
	}
}
