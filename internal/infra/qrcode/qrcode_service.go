// Package qrcode renders stock labels as QR code images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const labelType = "stock"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelData is the JSON payload encoded in a stock label.
type LabelData struct {
	StockID     string `json:"stock_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// EncodeStockLabel returns the text a label for stock carries.
func EncodeStockLabel(stock *entity.Stock) (string, error) {
	jsonData, err := json.Marshal(LabelData{
		StockID:     stock.ID.String(),
		ProductName: stock.ProductName,
		Type:        labelType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal label data: %w", err)
	}

	return string(jsonData), nil
}

// GenerateStockLabel renders the label of stock as a PNG image.
func (s *qrcodeService) GenerateStockLabel(stock *entity.Stock) ([]byte, error) {
	content, err := EncodeStockLabel(stock)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStockLabel parses scanned label text and returns the stock ID.
func (s *qrcodeService) ParseStockLabel(qrData string) (uuid.UUID, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal label data: %w", err)
	}

	if data.Type != labelType {
		return uuid.Nil, fmt.Errorf("invalid label type: %s", data.Type)
	}

	stockID, err := uuid.Parse(data.StockID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse stock ID: %w", err)
	}

	return stockID, nil
}
