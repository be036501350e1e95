package postgres

import (
	"context"
	"strings"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stockEditableColumns are the columns an edit may overwrite. quantity_left is absent on
// purpose: only DecrementQuantityLeft changes it after creation.
var stockEditableColumns = []string{
	"product_name", "quantity", "price", "currency_symbol", "month", "day", "year", "image_url",
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{db: db}
}

func (repo *stockRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Stock, error) {
	return repo.first(ctx, "failed to find stock by id", "id = ?", id)
}

func (repo *stockRepository) FindByProductName(ctx context.Context, productName string) (*entity.Stock, error) {
	return repo.first(ctx, "failed to find stock by product name", "product_name = ?", productName)
}

func (repo *stockRepository) List(ctx context.Context) ([]*entity.Stock, error) {
	return repo.find(repo.db.WithContext(ctx).Order("created_at DESC"), "failed to list stocks")
}

func (repo *stockRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Stock, error) {
	return repo.find(repo.db.WithContext(ctx).Order("created_at DESC").Limit(limit), "failed to list recent stocks")
}

// SearchByProductName matches case-insensitively; LIKE wildcards in query are taken literally.
func (repo *stockRepository) SearchByProductName(ctx context.Context, query string, limit int) ([]*entity.Stock, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	tx := repo.db.WithContext(ctx).
		Where(`LOWER(product_name) LIKE ? ESCAPE '\'`, pattern).
		Order("created_at DESC").
		Limit(limit)

	return repo.find(tx, "failed to search stocks")
}

func (repo *stockRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.StockModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stocks")
	}

	return total, nil
}

func (repo *stockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	stockM := fromStockDomain(stock)
	if err := repo.db.WithContext(ctx).Create(stockM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required stock information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock")
	}

	*stock = *toStockDomain(stockM)

	return nil
}

func (repo *stockRepository) Update(ctx context.Context, stock *entity.Stock) error {
	stockM := fromStockDomain(stock)
	result := repo.db.WithContext(ctx).
		Model(&model.StockModel{}).
		Where("id = ?", stock.ID).
		Select(stockEditableColumns).
		Updates(stockM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockNotFound
	}

	return nil
}

// DecrementQuantityLeft applies the subtraction inside the UPDATE statement, so concurrent
// callers never overwrite each other's result.
func (repo *stockRepository) DecrementQuantityLeft(ctx context.Context, id uuid.UUID, amount int) (*entity.Stock, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.StockModel{}).
		Where("id = ?", id).
		Update("quantity_left", gorm.Expr("quantity_left - ?", amount))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock quantity")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrStockNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *stockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StockModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockNotFound
	}

	return nil
}

func (repo *stockRepository) first(ctx context.Context, msg string, query string, args ...any) (*entity.Stock, error) {
	var stockM model.StockModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toStockDomain(&stockM), nil
}

func (repo *stockRepository) find(tx *gorm.DB, msg string) ([]*entity.Stock, error) {
	var stockMs []model.StockModel
	if err := tx.Find(&stockMs).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	stocks := make([]*entity.Stock, 0, len(stockMs))
	for i := range stockMs {
		stocks = append(stocks, toStockDomain(&stockMs[i]))
	}

	return stocks, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toStockDomain(data *model.StockModel) *entity.Stock {
	return &entity.Stock{
		ID:             data.ID,
		ProductName:    data.ProductName,
		Quantity:       data.Quantity,
		QuantityLeft:   data.QuantityLeft,
		Price:          data.Price,
		CurrencySymbol: data.CurrencySymbol,
		DateParts:      toDatePartsDomain(data.DateParts),
		ImageURL:       data.ImageURL,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromStockDomain(data *entity.Stock) *model.StockModel {
	return &model.StockModel{
		Base: model.Base{
			ID:        data.ID,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
		ProductName:    data.ProductName,
		Quantity:       data.Quantity,
		QuantityLeft:   data.QuantityLeft,
		Price:          data.Price,
		CurrencySymbol: data.CurrencySymbol,
		DateParts:      fromDatePartsDomain(data.DateParts),
		ImageURL:       data.ImageURL,
	}
}

func toDatePartsDomain(data model.DateParts) entity.DateParts {
	return entity.DateParts{Month: data.Month, Day: data.Day, Year: data.Year}
}

func fromDatePartsDomain(data entity.DateParts) model.DateParts {
	return model.DateParts{Month: data.Month, Day: data.Day, Year: data.Year}
}
