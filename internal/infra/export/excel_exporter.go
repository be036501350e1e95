// Package export renders inventory listings as xlsx workbooks.
package export

import (
	"strings"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	stockSheet  = "Stocks"
	recordSheet = "Records"
)

type excelExporter struct{}

// NewExcelExporter creates a SpreadsheetExporter backed by excelize.
func NewExcelExporter() service.SpreadsheetExporter {
	return &excelExporter{}
}

type column struct {
	header string
	width  float64
}

var stockColumns = []column{
	{"Product Name", 30}, {"Quantity", 10}, {"Quantity Left", 14}, {"Price", 12},
	{"Currency", 10}, {"Date", 18}, {"Created At", 20},
}

var recordColumns = []column{
	{"Product Name", 30}, {"Quantity", 10}, {"Price Per Quantity", 18}, {"Total Amount", 14},
	{"Customer", 20}, {"Staff", 20}, {"Overview", 40}, {"Date", 18},
}

func (e *excelExporter) ExportStocks(stocks []*entity.Stock) ([]byte, error) {
	rows := make([][]any, 0, len(stocks))
	for _, s := range stocks {
		rows = append(rows, []any{
			s.ProductName, s.Quantity, s.QuantityLeft, s.Price,
			s.CurrencySymbol, formatDate(s.DateParts), s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	return writeSheet(stockSheet, stockColumns, rows)
}

func (e *excelExporter) ExportRecords(records []*entity.Record) ([]byte, error) {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.ProductName, r.Quantity, r.PricePerQuantity, r.TotalAmount,
			r.Customer, r.Staff, r.Overview, formatDate(r.DateParts),
		})
	}

	return writeSheet(recordSheet, recordColumns, rows)
}

func writeSheet(sheetName string, columns []column, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet so the workbook has exactly one.
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to name worksheet")
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := f.SetCellValue(sheetName, name+"1", col.header); err != nil {
			return nil, errors.Wrap(err, "failed to write header")
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return nil, errors.Wrap(err, "failed to set column width")
		}
	}

	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", idx+2)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buf.Bytes(), nil
}

func formatDate(d entity.DateParts) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Month, d.Day, d.Year} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, " ")
}
