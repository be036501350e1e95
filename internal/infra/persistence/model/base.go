// Package model holds the GORM persistence models. Domain entities are mapped to and from
// these types by the repositories and never carry gorm tags themselves.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the identifier and timestamps shared by every table.
// IDs are generated in the application so every supported dialect behaves the same.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUIDv7 when the caller did not set one.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	b.ID = id

	return nil
}

// DateParts mirrors entity.DateParts as three columns.
type DateParts struct {
	Month string `gorm:"type:varchar(20)"`
	Day   string `gorm:"type:varchar(2)"`
	Year  string `gorm:"type:varchar(4)"`
}

// All returns every model so the schema can be migrated in one call.
func All() []any {
	return []any{
		&UserModel{},
		&StockModel{},
		&RecordModel{},
		&StaffModel{},
		&WorkdoneModel{},
	}
}
