package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"
	"inventory/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// stockService implements the StockUsecase interface.
type stockService struct {
	stockRepo  repository.StockRepository
	qrService  service.QRCodeService
	imageStore service.ImageStore
	exporter   service.SpreadsheetExporter
	logger     *slog.Logger
}

// StockServiceParams holds dependencies for StockService, injected by Fx.
type StockServiceParams struct {
	fx.In

	StockRepo  repository.StockRepository
	QRService  service.QRCodeService
	ImageStore service.ImageStore
	Exporter   service.SpreadsheetExporter
	Logger     *slog.Logger
}

// NewStockService is the constructor for stockService.
func NewStockService(params StockServiceParams) usecase.StockUsecase {
	return &stockService{
		stockRepo:  params.StockRepo,
		qrService:  params.QRService,
		imageStore: params.ImageStore,
		exporter:   params.Exporter,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *stockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStock adds a stock item with quantityLeft starting at quantity.
func (srv *stockService) CreateStock(ctx context.Context, input *usecase.CreateStockInput) (*entity.Stock, error) {
	stock := &entity.Stock{
		ProductName:    input.ProductName,
		Quantity:       input.Quantity,
		QuantityLeft:   input.Quantity,
		Price:          input.Price,
		CurrencySymbol: input.CurrencySymbol,
		DateParts:      input.Date,
		ImageURL:       input.ImageURL,
	}

	if err := srv.stockRepo.Create(ctx, stock); err != nil {
		return nil, errors.Wrap(err, "failed to create stock")
	}

	srv.log(ctx).Info("Stock created", slog.String("stockID", stock.ID.String()), slog.String("productName", stock.ProductName))

	return stock, nil
}

func (srv *stockService) GetStock(ctx context.Context, id uuid.UUID) (*entity.Stock, error) {
	stock, err := srv.stockRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return nil, domainerrors.ErrStockNotFound.WrapMessage("stock not found")
		}

		return nil, errors.Wrap(err, "failed to find stock")
	}

	return stock, nil
}

func (srv *stockService) ListStocks(ctx context.Context) ([]*entity.Stock, error) {
	stocks, err := srv.stockRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stocks")
	}

	return stocks, nil
}

func (srv *stockService) ListRecentStocks(ctx context.Context) ([]*entity.Stock, error) {
	stocks, err := srv.stockRepo.ListRecent(ctx, constants.RecentStocksLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent stocks")
	}

	return stocks, nil
}

func (srv *stockService) SearchStocks(ctx context.Context, query string) ([]*entity.Stock, error) {
	stocks, err := srv.stockRepo.SearchByProductName(ctx, query, constants.SearchResultLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search stocks")
	}

	return stocks, nil
}

func (srv *stockService) CountStocks(ctx context.Context) (int64, error) {
	total, err := srv.stockRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count stocks")
	}

	return total, nil
}

// UpdateStock edits the descriptive fields. quantityLeft only moves through records.
func (srv *stockService) UpdateStock(ctx context.Context, id uuid.UUID, input *usecase.UpdateStockInput) (*entity.Stock, error) {
	stock, err := srv.GetStock(ctx, id)
	if err != nil {
		return nil, err
	}

	applyStockUpdates(stock, input)

	if err := srv.stockRepo.Update(ctx, stock); err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return nil, domainerrors.ErrStockNotFound.WrapMessage("stock not found")
		}

		return nil, errors.Wrap(err, "failed to update stock")
	}

	return stock, nil
}

func applyStockUpdates(stock *entity.Stock, input *usecase.UpdateStockInput) {
	if input.ProductName != nil {
		stock.ProductName = *input.ProductName
	}
	if input.Quantity != nil {
		stock.Quantity = *input.Quantity
	}
	if input.Price != nil {
		stock.Price = *input.Price
	}
	if input.CurrencySymbol != nil {
		stock.CurrencySymbol = *input.CurrencySymbol
	}
	if input.Month != nil {
		stock.Month = *input.Month
	}
	if input.Day != nil {
		stock.Day = *input.Day
	}
	if input.Year != nil {
		stock.Year = *input.Year
	}
	if input.ImageURL != nil {
		stock.ImageURL = *input.ImageURL
	}
}

func (srv *stockService) DeleteStock(ctx context.Context, id uuid.UUID) error {
	if err := srv.stockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStockNotFound) {
			return domainerrors.ErrStockNotFound.WrapMessage("stock not found")
		}

		return errors.Wrap(err, "failed to delete stock")
	}

	srv.log(ctx).Info("Stock deleted", slog.String("stockID", id.String()))

	return nil
}

func (srv *stockService) StockLabel(ctx context.Context, id uuid.UUID) ([]byte, error) {
	stock, err := srv.GetStock(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateStockLabel(stock)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate stock label")
	}

	return png, nil
}

func (srv *stockService) ResolveLabel(ctx context.Context, label string) (*entity.Stock, error) {
	id, err := srv.qrService.ParseStockLabel(label)
	if err != nil {
		srv.log(ctx).Debug("Unreadable stock label", slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WithDetails("label is not a stock label")
	}

	return srv.GetStock(ctx, id)
}

// UploadImage stores the image under its content hash, so re-uploads of the same file share one object.
func (srv *stockService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	key, err := util.ImageKey(input.Data, input.ContentType)
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if err := srv.imageStore.Put(ctx, key, input.ContentType, input.Data); err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Stock image uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(input.Data)))),
	)

	return srv.imageStore.URL(key), nil
}

func (srv *stockService) OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, contentType, err := srv.imageStore.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return nil, "", domainerrors.ErrImageNotFound.WrapMessage(key)
		}

		return nil, "", errors.Wrap(err, "failed to open image")
	}

	return reader, contentType, nil
}

func (srv *stockService) ExportStocks(ctx context.Context) ([]byte, error) {
	stocks, err := srv.ListStocks(ctx)
	if err != nil {
		return nil, err
	}

	data, err := srv.exporter.ExportStocks(stocks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export stocks")
	}

	srv.log(ctx).Info("Stocks exported", slog.Int("count", len(stocks)))

	return data, nil
}
