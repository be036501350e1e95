package model

// StockModel mirrors the 'stocks' table.
type StockModel struct {
	Base
	ProductName    string  `gorm:"type:varchar(255);not null;index"`
	Quantity       int     `gorm:"not null"`
	QuantityLeft   int     `gorm:"not null"`
	Price          float64 `gorm:"not null"`
	CurrencySymbol string  `gorm:"type:varchar(8);not null"`
	DateParts      `gorm:"embedded"`
	ImageURL       string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (StockModel) TableName() string {
	return "stocks"
}
