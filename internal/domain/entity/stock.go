package entity

import (
	"time"

	"github.com/google/uuid"
)

// Stock is an inventory item with an initial and a remaining quantity.
type Stock struct {
	ID             uuid.UUID `json:"_id"`
	ProductName    string    `json:"productName"`
	Quantity       int       `json:"quantity"`
	QuantityLeft   int       `json:"quantityLeft"` // Only decreased by record creation; may go negative.
	Price          float64   `json:"price"`
	CurrencySymbol string    `json:"currencySymbol"`
	DateParts
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsDepleted reports whether nothing is left of the stock.
func (s *Stock) IsDepleted() bool {
	return s.QuantityLeft <= 0
}
