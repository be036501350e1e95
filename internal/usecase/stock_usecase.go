package usecase

import (
	"context"
	"io"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStockInput defines the data required to add a stock item.
type CreateStockInput struct {
	ProductName    string
	Quantity       int
	Price          float64
	CurrencySymbol string
	Date           entity.DateParts
	ImageURL       string
}

// UpdateStockInput holds the fields to change; nil fields are kept.
type UpdateStockInput struct {
	ProductName    *string
	Quantity       *int
	Price          *float64
	CurrencySymbol *string
	Month          *string
	Day            *string
	Year           *string
	ImageURL       *string
}

// UploadImageInput is an image file sent with a stock.
type UploadImageInput struct {
	ContentType string
	Data        []byte
}

// StockUsecase defines stock item operations.
type StockUsecase interface {
	CreateStock(ctx context.Context, input *CreateStockInput) (*entity.Stock, error)
	GetStock(ctx context.Context, id uuid.UUID) (*entity.Stock, error)
	ListStocks(ctx context.Context) ([]*entity.Stock, error)
	ListRecentStocks(ctx context.Context) ([]*entity.Stock, error)
	SearchStocks(ctx context.Context, query string) ([]*entity.Stock, error)
	CountStocks(ctx context.Context) (int64, error)
	UpdateStock(ctx context.Context, id uuid.UUID, input *UpdateStockInput) (*entity.Stock, error)
	DeleteStock(ctx context.Context, id uuid.UUID) error

	// StockLabel renders the QR label of a stock item as PNG.
	StockLabel(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ResolveLabel returns the stock item a scanned label points at.
	ResolveLabel(ctx context.Context, label string) (*entity.Stock, error)

	// UploadImage stores an image and returns the reference to put on a stock.
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)

	// OpenImage returns a stored image and its content type.
	OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error)

	// ExportStocks renders every stock item as an xlsx workbook.
	ExportStocks(ctx context.Context) ([]byte, error)
}
