package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// recordService implements the RecordUsecase interface.
type recordService struct {
	txManager  repository.TransactionManager
	recordRepo repository.RecordRepository
	publisher  service.EventPublisher
	exporter   service.SpreadsheetExporter
	now        func() time.Time
	logger     *slog.Logger
}

// RecordServiceParams holds dependencies for RecordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecordRepo repository.RecordRepository
	Publisher  service.EventPublisher
	Exporter   service.SpreadsheetExporter
	Logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		txManager:  params.TxManager,
		recordRepo: params.RecordRepo,
		publisher:  params.Publisher,
		exporter:   params.Exporter,
		now:        time.Now,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// totalAmount multiplies in decimal so that 0.1 x 3 stays 0.3.
func totalAmount(pricePerQuantity float64, quantity int) float64 {
	return decimal.NewFromFloat(pricePerQuantity).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}

func (srv *recordService) AddRecord(ctx context.Context, input *usecase.AddRecordInput) (*entity.Record, error) {
	record := &entity.Record{
		ProductName:      input.ProductName,
		Quantity:         input.Quantity,
		PricePerQuantity: input.PricePerQuantity,
		TotalAmount:      totalAmount(input.PricePerQuantity, input.Quantity),
		Overview:         input.Overview,
		Customer:         input.Customer,
		Staff:            input.Staff,
		DateParts:        input.Date,
	}

	var stock *entity.Stock
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		stockRepo := txRepoFactory.StockRepo()

		found, err := stockRepo.FindByProductName(ctx, input.ProductName)
		if err != nil {
			if errors.Is(err, repository.ErrStockNotFound) {
				return domainerrors.ErrStockNotFound.WrapMessage("no stock named " + input.ProductName)
			}

			return errors.Wrap(err, "failed to find stock by product name")
		}

		// Single UPDATE ... SET quantity_left = quantity_left - n; concurrent records never lose a decrement.
		stock, err = stockRepo.DecrementQuantityLeft(ctx, found.ID, input.Quantity)
		if err != nil {
			if errors.Is(err, repository.ErrStockNotFound) {
				return domainerrors.ErrStockNotFound.WrapMessage("stock removed while recording")
			}

			return errors.Wrap(err, "failed to decrement stock")
		}

		record.StockID = stock.ID
		if err := txRepoFactory.RecordRepo().Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create record")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Record added",
		slog.String("recordID", record.ID.String()),
		slog.String("stockID", stock.ID.String()),
		slog.Int("quantityLeft", stock.QuantityLeft),
	)

	srv.publish(ctx, constants.EventRecordCreated, stock, record)
	if stock.IsDepleted() {
		srv.publish(ctx, constants.EventStockDepleted, stock, record)
	}

	return record, nil
}

// publish emits a stock event after commit. Failures are logged only.
func (srv *recordService) publish(ctx context.Context, eventType string, stock *entity.Stock, record *entity.Record) {
	event := &service.StockEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Type:         eventType,
		StockID:      stock.ID.String(),
		ProductName:  stock.ProductName,
		Quantity:     record.Quantity,
		QuantityLeft: stock.QuantityLeft,
		RecordID:     record.ID.String(),
		Actor:        deliverycontext.GetActor(ctx),
		OccurredAt:   srv.now(),
	}

	if err := srv.publisher.PublishStockEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish stock event",
			slog.String("type", eventType),
			slog.String("stockID", event.StockID),
			slog.Any("error", err),
		)
	}
}

func (srv *recordService) GetRecord(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	record, err := srv.recordRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WrapMessage("record not found")
		}

		return nil, errors.Wrap(err, "failed to find record")
	}

	return record, nil
}

func (srv *recordService) ListRecords(ctx context.Context) ([]*entity.Record, error) {
	records, err := srv.recordRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	return records, nil
}

func (srv *recordService) ListRecordsByProductName(ctx context.Context, productName string) ([]*entity.Record, error) {
	records, err := srv.recordRepo.ListByProductName(ctx, productName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list records by product name")
	}

	return records, nil
}

func (srv *recordService) CountRecords(ctx context.Context) (int64, error) {
	total, err := srv.recordRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count records")
	}

	return total, nil
}

// UpdateRecord edits the record only; the stock keeps its quantityLeft.
func (srv *recordService) UpdateRecord(ctx context.Context, id uuid.UUID, input *usecase.UpdateRecordInput) (*entity.Record, error) {
	record, err := srv.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	applyRecordUpdates(record, input)

	if err := srv.recordRepo.Update(ctx, record); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WrapMessage("record not found")
		}

		return nil, errors.Wrap(err, "failed to update record")
	}

	return record, nil
}

func applyRecordUpdates(record *entity.Record, input *usecase.UpdateRecordInput) {
	if input.ProductName != nil {
		record.ProductName = *input.ProductName
	}
	if input.Quantity != nil {
		record.Quantity = *input.Quantity
	}
	if input.PricePerQuantity != nil {
		record.PricePerQuantity = *input.PricePerQuantity
	}
	if input.Overview != nil {
		record.Overview = *input.Overview
	}
	if input.Customer != nil {
		record.Customer = *input.Customer
	}
	if input.Staff != nil {
		record.Staff = *input.Staff
	}
	if input.Month != nil {
		record.Month = *input.Month
	}
	if input.Day != nil {
		record.Day = *input.Day
	}
	if input.Year != nil {
		record.Year = *input.Year
	}
	if input.Quantity != nil || input.PricePerQuantity != nil {
		record.TotalAmount = totalAmount(record.PricePerQuantity, record.Quantity)
	}
}

func (srv *recordService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if err := srv.recordRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.ErrRecordNotFound.WrapMessage("record not found")
		}

		return errors.Wrap(err, "failed to delete record")
	}

	return nil
}

func (srv *recordService) ExportRecords(ctx context.Context) ([]byte, error) {
	records, err := srv.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	data, err := srv.exporter.ExportRecords(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export records")
	}

	srv.log(ctx).Info("Records exported", slog.Int("count", len(records)))

	return data, nil
}
