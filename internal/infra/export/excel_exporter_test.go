package export

import (
	"bytes"
	"testing"
	"time"

	"inventory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExporter_ExportStocks(t *testing.T) {
	data, err := NewExcelExporter().ExportStocks([]*entity.Stock{
		{
			ProductName:    "Blue Pen",
			Quantity:       10,
			QuantityLeft:   3,
			Price:          1.25,
			CurrencySymbol: "$",
			DateParts:      entity.DateParts{Month: "March", Day: "4", Year: "2024"},
			CreatedAt:      time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{stockSheet}, f.GetSheetList())

	rows, err := f.GetRows(stockSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Product Name", rows[0][0])
	assert.Equal(t, []string{"Blue Pen", "10", "3", "1.25", "$", "March 4 2024", "2024-03-04 09:30"}, rows[1])
}

func TestExcelExporter_ExportRecords(t *testing.T) {
	data, err := NewExcelExporter().ExportRecords([]*entity.Record{
		{ProductName: "Ink", Quantity: 2, PricePerQuantity: 3.5, TotalAmount: 7, Customer: "ACME", Staff: "Bob"},
		{ProductName: "Pen", Quantity: 1, PricePerQuantity: 1, TotalAmount: 1},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(recordSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Total Amount", rows[0][3])
	assert.Equal(t, "7", rows[1][3])
	assert.Equal(t, "ACME", rows[1][4])
}

func TestExcelExporter_Empty(t *testing.T) {
	data, err := NewExcelExporter().ExportStocks(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(stockSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
