package service

import "inventory/internal/domain/entity"

// SpreadsheetExporter renders inventory data as an xlsx workbook.
type SpreadsheetExporter interface {
	ExportStocks(stocks []*entity.Stock) ([]byte, error)
	ExportRecords(records []*entity.Record) ([]byte, error)
}
