package model

// WorkdoneModel mirrors the 'workdones' table.
type WorkdoneModel struct {
	Base
	WorkDone  string `gorm:"type:text;not null"`
	Charge    string `gorm:"type:varchar(50);not null"`
	DateParts `gorm:"embedded"`
}

// TableName explicitly sets the table name for GORM.
func (WorkdoneModel) TableName() string {
	return "workdones"
}
