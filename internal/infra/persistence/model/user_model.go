package model

// UserModel mirrors the 'users' table.
type UserModel struct {
	Base
	Firstname    string `gorm:"type:varchar(100);not null"`
	Lastname     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:Admin"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
