package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStockNotFound is returned when a stock item is not found.
var ErrStockNotFound = errors.New("stock not found")

// StockRepository defines persistence operations for stock items.
type StockRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Stock, error)

	// FindByProductName matches the product name exactly.
	FindByProductName(ctx context.Context, productName string) (*entity.Stock, error)

	// List returns all stocks, newest first.
	List(ctx context.Context) ([]*entity.Stock, error)

	// ListRecent returns up to limit stocks, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Stock, error)

	// SearchByProductName does a case-insensitive substring match, capped at limit results.
	SearchByProductName(ctx context.Context, query string, limit int) ([]*entity.Stock, error)

	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, stock *entity.Stock) error

	// Update overwrites the editable fields of the stock.
	Update(ctx context.Context, stock *entity.Stock) error

	// DecrementQuantityLeft subtracts amount from quantityLeft in a single atomic write
	// and returns the stock as it is after the write.
	DecrementQuantityLeft(ctx context.Context, id uuid.UUID, amount int) (*entity.Stock, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
