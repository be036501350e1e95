package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	mockRepo "inventory/internal/mocks/repository"
	mockSvc "inventory/internal/mocks/service"
	"inventory/internal/usecase"
	"inventory/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stockServiceFixtures holds all test dependencies for stock service tests.
type stockServiceFixtures struct {
	service    usecase.StockUsecase
	stockRepo  *mockRepo.MockStockRepository
	qrService  *mockSvc.MockQRCodeService
	imageStore *mockSvc.MockImageStore
	exporter   *mockSvc.MockSpreadsheetExporter
}

func createTestStockService(t *testing.T) stockServiceFixtures {
	stockRepo := mockRepo.NewMockStockRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	imageStore := mockSvc.NewMockImageStore(t)
	exporter := mockSvc.NewMockSpreadsheetExporter(t)

	srv := NewStockService(StockServiceParams{
		StockRepo:  stockRepo,
		QRService:  qrService,
		ImageStore: imageStore,
		Exporter:   exporter,
		Logger:     newDiscardLogger(),
	})

	return stockServiceFixtures{
		service:    srv,
		stockRepo:  stockRepo,
		qrService:  qrService,
		imageStore: imageStore,
		exporter:   exporter,
	}
}

func TestStockService_CreateStock_InitializesQuantityLeft(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	input := &usecase.CreateStockInput{
		ProductName:    "Pen",
		Quantity:       10,
		Price:          2.5,
		CurrencySymbol: "$",
		Date:           entity.DateParts{Month: "May", Day: "1", Year: "2024"},
	}

	fx.stockRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Stock")).
		Run(func(_ context.Context, stock *entity.Stock) {
			stock.ID = uuid.New()
		}).
		Return(nil)

	stock, err := fx.service.CreateStock(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 10, stock.Quantity)
	assert.Equal(t, 10, stock.QuantityLeft)
	assert.Equal(t, "$", stock.CurrencySymbol)
}

func TestStockService_UpdateStock_KeepsQuantityLeft(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	id := uuid.New()
	existing := &entity.Stock{ID: id, ProductName: "Pen", Quantity: 10, QuantityLeft: 4}
	name := "Blue Pen"
	quantity := 20

	fx.stockRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	fx.stockRepo.EXPECT().Update(ctx, existing).Return(nil)

	stock, err := fx.service.UpdateStock(ctx, id, &usecase.UpdateStockInput{ProductName: &name, Quantity: &quantity})

	require.NoError(t, err)
	assert.Equal(t, "Blue Pen", stock.ProductName)
	assert.Equal(t, 20, stock.Quantity)
	assert.Equal(t, 4, stock.QuantityLeft)
}

func TestStockService_NotFound(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.stockRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrStockNotFound)
	fx.stockRepo.EXPECT().Delete(ctx, id).Return(repository.ErrStockNotFound)

	_, err := fx.service.GetStock(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrStockNotFound))

	err = fx.service.DeleteStock(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrStockNotFound))
}

func TestStockService_ListingLimits(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()

	fx.stockRepo.EXPECT().ListRecent(ctx, constants.RecentStocksLimit).Return([]*entity.Stock{}, nil)
	fx.stockRepo.EXPECT().SearchByProductName(ctx, "pen", constants.SearchResultLimit).Return([]*entity.Stock{}, nil)
	fx.stockRepo.EXPECT().Count(ctx).Return(int64(7), nil)

	_, err := fx.service.ListRecentStocks(ctx)
	require.NoError(t, err)

	_, err = fx.service.SearchStocks(ctx, "pen")
	require.NoError(t, err)

	total, err := fx.service.CountStocks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
}

func TestStockService_StockLabel(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	stock := &entity.Stock{ID: uuid.New(), ProductName: "Pen"}

	fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)
	fx.qrService.EXPECT().GenerateStockLabel(stock).Return([]byte("png"), nil)

	png, err := fx.service.StockLabel(ctx, stock.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestStockService_ResolveLabel(t *testing.T) {
	t.Run("resolves to the stock item", func(t *testing.T) {
		fx := createTestStockService(t)
		ctx := context.Background()
		stock := &entity.Stock{ID: uuid.New(), ProductName: "Pen"}

		fx.qrService.EXPECT().ParseStockLabel("label").Return(stock.ID, nil)
		fx.stockRepo.EXPECT().FindByID(ctx, stock.ID).Return(stock, nil)

		got, err := fx.service.ResolveLabel(ctx, "label")

		require.NoError(t, err)
		assert.Equal(t, stock, got)
	})

	t.Run("unreadable label", func(t *testing.T) {
		fx := createTestStockService(t)

		fx.qrService.EXPECT().ParseStockLabel("garbage").Return(uuid.Nil, errors.New("bad json"))

		_, err := fx.service.ResolveLabel(context.Background(), "garbage")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestStockService_UploadImage(t *testing.T) {
	t.Run("stores under content key", func(t *testing.T) {
		fx := createTestStockService(t)
		ctx := context.Background()
		data := []byte("fake-png")
		key, err := util.ImageKey(data, "image/png")
		require.NoError(t, err)

		fx.imageStore.EXPECT().Put(ctx, key, "image/png", data).Return(nil)
		fx.imageStore.EXPECT().URL(key).Return("/stock/images/" + key)

		url, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{ContentType: "image/png", Data: data})

		require.NoError(t, err)
		assert.Equal(t, "/stock/images/"+key, url)
	})

	t.Run("unsupported type", func(t *testing.T) {
		fx := createTestStockService(t)

		_, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{ContentType: "text/plain", Data: []byte("x")})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestStockService_OpenImage(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestStockService(t)
		ctx := context.Background()

		fx.imageStore.EXPECT().Open(ctx, "abc.png").Return(io.NopCloser(strings.NewReader("png")), "image/png", nil)

		reader, contentType, err := fx.service.OpenImage(ctx, "abc.png")

		require.NoError(t, err)
		defer reader.Close()
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestStockService(t)
		ctx := context.Background()

		fx.imageStore.EXPECT().Open(ctx, "gone.png").Return(nil, "", service.ErrImageNotFound)

		_, _, err := fx.service.OpenImage(ctx, "gone.png")

		assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
	})
}

func TestStockService_ExportStocks(t *testing.T) {
	fx := createTestStockService(t)

	ctx := context.Background()
	stocks := []*entity.Stock{{ID: uuid.New(), ProductName: "Pen"}}

	fx.stockRepo.EXPECT().List(ctx).Return(stocks, nil)
	fx.exporter.EXPECT().ExportStocks(stocks).Return([]byte("xlsx"), nil)

	data, err := fx.service.ExportStocks(ctx)

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
}
