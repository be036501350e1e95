package model

import "github.com/google/uuid"

// RecordModel mirrors the 'records' table. StockID is a plain reference; deleting a
// stock leaves its records in place, so no foreign key constraint is declared.
type RecordModel struct {
	Base
	ProductName      string    `gorm:"type:varchar(255);not null;index"`
	Quantity         int       `gorm:"not null"`
	PricePerQuantity float64   `gorm:"not null"`
	TotalAmount      float64   `gorm:"not null;default:0"`
	Overview         string    `gorm:"type:text"`
	Customer         string    `gorm:"type:varchar(255)"`
	Staff            string    `gorm:"type:varchar(255)"`
	StockID          uuid.UUID `gorm:"type:uuid;index"`
	DateParts        `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (RecordModel) TableName() string {
	return "records"
}
