package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record is a logged consumption of a stock item.
type Record struct {
	ID               uuid.UUID `json:"_id"`
	ProductName      string    `json:"productName"`
	Quantity         int       `json:"quantity"`
	PricePerQuantity float64   `json:"pricePerQuantity"`
	TotalAmount      float64   `json:"totalAmount"`
	Overview         string    `json:"overview"`
	Customer         string    `json:"customer"`
	Staff            string    `json:"staff"`
	StockID          uuid.UUID `json:"stockId"`
	DateParts
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
