package handler

import (
	"io"
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/domain/entity"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	mimeXLSX      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePNG       = "image/png"
	imageFormName = "image"
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockUsecase
	Logger  *slog.Logger
}

// StockHandler holds dependencies for stock-related handlers
type StockHandler struct {
	stockUC usecase.StockUsecase
	logger  *slog.Logger
}

// NewStockHandler is the constructor for StockHandler
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC: params.StockUC,
		logger:  params.Logger,
	}
}

// AddStockRequest represents the request body for adding a stock item
type AddStockRequest struct {
	ProductName    string  `json:"productName" validate:"required"`
	Quantity       int     `json:"quantity" validate:"gt=0"`
	Price          float64 `json:"price" validate:"gte=0"`
	CurrencySymbol string  `json:"currencySymbol"`
	Month          string  `json:"month"`
	Day            string  `json:"day"`
	Year           string  `json:"year"`
	ImageURL       string  `json:"imageUrl"`
}

// EditStockRequest represents the request body for editing a stock item.
// quantityLeft is not accepted; it only moves when records are added.
type EditStockRequest struct {
	ProductName    *string  `json:"productName" validate:"omitempty,min=1"`
	Quantity       *int     `json:"quantity" validate:"omitempty,gt=0"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	CurrencySymbol *string  `json:"currencySymbol"`
	Month          *string  `json:"month"`
	Day            *string  `json:"day"`
	Year           *string  `json:"year"`
	ImageURL       *string  `json:"imageUrl"`
}

// AddStock handles stock creation
func (h *StockHandler) AddStock(c echo.Context) error {
	var req AddStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	stock, err := h.stockUC.CreateStock(c.Request().Context(), &usecase.CreateStockInput{
		ProductName:    req.ProductName,
		Quantity:       req.Quantity,
		Price:          req.Price,
		CurrencySymbol: req.CurrencySymbol,
		Date:           entity.DateParts{Month: req.Month, Day: req.Day, Year: req.Year},
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, response.Envelope{Message: "Stock added successfully!", Data: stock})
}

// TotalStocks returns the number of stock items
func (h *StockHandler) TotalStocks(c echo.Context) error {
	total, err := h.stockUC.CountStocks(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Total(c, total)
}

// GetStocks returns every stock item
func (h *StockHandler) GetStocks(c echo.Context) error {
	stocks, err := h.stockUC.ListStocks(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stocks)
}

// EditStock handles a partial update of a stock item
func (h *StockHandler) EditStock(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid stock ID")
	}

	var req EditStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	stock, err := h.stockUC.UpdateStock(c.Request().Context(), id, &usecase.UpdateStockInput{
		ProductName:    req.ProductName,
		Quantity:       req.Quantity,
		Price:          req.Price,
		CurrencySymbol: req.CurrencySymbol,
		Month:          req.Month,
		Day:            req.Day,
		Year:           req.Year,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Envelope{Message: "Stock updated successfully!", Data: stock})
}

// DeleteStock removes a stock item
func (h *StockHandler) DeleteStock(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid stock ID")
	}

	if err := h.stockUC.DeleteStock(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Stock deleted successfully!")
}

// PreviewStock returns a single stock item
func (h *StockHandler) PreviewStock(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid stock ID")
	}

	stock, err := h.stockUC.GetStock(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stock)
}

// RecentStocks returns the newest stock items
func (h *StockHandler) RecentStocks(c echo.Context) error {
	stocks, err := h.stockUC.ListRecentStocks(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stocks)
}

// SearchStocks matches stock items by product name
func (h *StockHandler) SearchStocks(c echo.Context) error {
	stocks, err := h.stockUC.SearchStocks(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stocks)
}

// StockLabel renders the QR label of a stock item as PNG
func (h *StockHandler) StockLabel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid stock ID")
	}

	png, err := h.stockUC.StockLabel(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, mimePNG, png)
}

// ScanLabelRequest carries the text decoded from a stock label
type ScanLabelRequest struct {
	Label string `json:"label" validate:"required"`
}

// ScanLabel resolves a scanned label to its stock item
func (h *StockHandler) ScanLabel(c echo.Context) error {
	var req ScanLabelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid label input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	stock, err := h.stockUC.ResolveLabel(c.Request().Context(), req.Label)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stock)
}

// UploadImage stores a multipart image and returns the reference to put on a stock item
func (h *StockHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(imageFormName)
	if err != nil {
		return response.BadRequest(c, "MISSING_FIELDS", "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unreadable image file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unreadable image file")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	imageURL, err := h.stockUC.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, response.Envelope{
		Message: "Image uploaded successfully",
		Data:    map[string]string{"imageUrl": imageURL},
	})
}

// Image streams a stored stock image
func (h *StockHandler) Image(c echo.Context) error {
	body, contentType, err := h.stockUC.OpenImage(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	defer body.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, contentType, body)
}

// ExportStocks downloads every stock item as an xlsx workbook
func (h *StockHandler) ExportStocks(c echo.Context) error {
	data, err := h.stockUC.ExportStocks(c.Request().Context())
	if err != nil {
		return err
	}

	return attachment(c, "stocks.xlsx", data)
}

func attachment(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, mimeXLSX, data)
}
