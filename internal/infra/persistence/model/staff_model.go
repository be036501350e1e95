package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StaffModel mirrors the 'staffs' table. The work log is stored inline as a JSON
// array, so the whole aggregate is written in one statement guarded by Version.
type StaffModel struct {
	Base
	StaffName   string `gorm:"type:varchar(255);not null"`
	Email       string `gorm:"type:varchar(255);not null"`
	PhoneNumber string `gorm:"type:varchar(50);not null"`
	Position    string `gorm:"type:varchar(100);not null"`
	DateParts   `gorm:"embedded"`
	WorkDone    datatypes.JSONSlice[WorkDoneEntryModel]
	Version     int `gorm:"not null;default:0"`
}

// WorkDoneEntryModel is one element of StaffModel.WorkDone.
type WorkDoneEntryModel struct {
	ID       uuid.UUID `json:"_id"`
	WorkDone string    `json:"workdone"`
	Charge   float64   `json:"charge"`
	Month    string    `json:"month"`
	Day      string    `json:"day"`
	Year     string    `json:"year"`
}

// TableName explicitly sets the table name for GORM.
func (StaffModel) TableName() string {
	return "staffs"
}
