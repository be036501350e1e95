package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/domain/entity"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecordHandlerParams holds dependencies for RecordHandler, injected by Fx.
type RecordHandlerParams struct {
	fx.In

	RecordUC usecase.RecordUsecase
	StockUC  usecase.StockUsecase
	Logger   *slog.Logger
}

// RecordHandler holds dependencies for usage record handlers
type RecordHandler struct {
	recordUC usecase.RecordUsecase
	stockUC  usecase.StockUsecase
	logger   *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler
func NewRecordHandler(params RecordHandlerParams) *RecordHandler {
	return &RecordHandler{
		recordUC: params.RecordUC,
		stockUC:  params.StockUC,
		logger:   params.Logger,
	}
}

// AddRecordRequest represents the request body for logging a consumption
type AddRecordRequest struct {
	ProductName      string  `json:"productName" validate:"required"`
	Quantity         int     `json:"quantity" validate:"gt=0"`
	PricePerQuantity float64 `json:"pricePerQuantity" validate:"gte=0"`
	Overview         string  `json:"overview"`
	Customer         string  `json:"customer"`
	Staff            string  `json:"staff"`
	Month            string  `json:"month"`
	Day              string  `json:"day"`
	Year             string  `json:"year"`
}

// EditRecordRequest represents the request body for editing a record
type EditRecordRequest struct {
	ProductName      *string  `json:"productName" validate:"omitempty,min=1"`
	Quantity         *int     `json:"quantity" validate:"omitempty,gt=0"`
	PricePerQuantity *float64 `json:"pricePerQuantity" validate:"omitempty,gte=0"`
	Overview         *string  `json:"overview"`
	Customer         *string  `json:"customer"`
	Staff            *string  `json:"staff"`
	Month            *string  `json:"month"`
	Day              *string  `json:"day"`
	Year             *string  `json:"year"`
}

// AddRecord logs a consumption and takes it off the matching stock item
func (h *RecordHandler) AddRecord(c echo.Context) error {
	var req AddRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.recordUC.AddRecord(c.Request().Context(), &usecase.AddRecordInput{
		ProductName:      req.ProductName,
		Quantity:         req.Quantity,
		PricePerQuantity: req.PricePerQuantity,
		Overview:         req.Overview,
		Customer:         req.Customer,
		Staff:            req.Staff,
		Date:             entity.DateParts{Month: req.Month, Day: req.Day, Year: req.Year},
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, response.Envelope{
		Message: "Record added and stock quantityLeft updated successfully.",
		Data:    record,
	})
}

// SearchStocks lets the record form look up a stock item by product name
func (h *RecordHandler) SearchStocks(c echo.Context) error {
	stocks, err := h.stockUC.SearchStocks(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stocks)
}

// TotalRecords returns the number of records
func (h *RecordHandler) TotalRecords(c echo.Context) error {
	total, err := h.recordUC.CountRecords(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Total(c, total)
}

// GetRecords returns every record
func (h *RecordHandler) GetRecords(c echo.Context) error {
	records, err := h.recordUC.ListRecords(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records)
}

// EditRecord handles a partial update of a record
func (h *RecordHandler) EditRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	var req EditRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.recordUC.UpdateRecord(c.Request().Context(), id, &usecase.UpdateRecordInput{
		ProductName:      req.ProductName,
		Quantity:         req.Quantity,
		PricePerQuantity: req.PricePerQuantity,
		Overview:         req.Overview,
		Customer:         req.Customer,
		Staff:            req.Staff,
		Month:            req.Month,
		Day:              req.Day,
		Year:             req.Year,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Envelope{Message: "Record updated successfully!", Data: record})
}

// DeleteRecord removes a record; the stock item keeps its remaining quantity
func (h *RecordHandler) DeleteRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	if err := h.recordUC.DeleteRecord(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Record deleted successfully!")
}

// PreviewRecord returns a single record
func (h *RecordHandler) PreviewRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid record ID")
	}

	record, err := h.recordUC.GetRecord(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, record)
}

// RecordsByProduct returns the records logged against a product name
func (h *RecordHandler) RecordsByProduct(c echo.Context) error {
	productName := c.Param("productName")
	if productName == "" {
		return response.BadRequest(c, "MISSING_FIELDS", "Product name is required")
	}

	records, err := h.recordUC.ListRecordsByProductName(c.Request().Context(), productName)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Envelope{Records: records})
}

// ExportRecords downloads every record as an xlsx workbook
func (h *RecordHandler) ExportRecords(c echo.Context) error {
	data, err := h.recordUC.ExportRecords(c.Request().Context())
	if err != nil {
		return err
	}

	return attachment(c, "records.xlsx", data)
}
