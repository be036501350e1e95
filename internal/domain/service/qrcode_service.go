package service

import (
	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// QRCodeService defines the interface for stock label generation and parsing
type QRCodeService interface {
	// GenerateStockLabel renders a PNG QR code identifying the stock item
	GenerateStockLabel(stock *entity.Stock) ([]byte, error)

	// ParseStockLabel parses label data and returns the stock ID
	ParseStockLabel(data string) (uuid.UUID, error)
}
