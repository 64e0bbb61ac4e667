// Package model contains the GORM persistence models. They mirror the domain
// entities but carry storage concerns (table names, column tags, constraints)
// that do not belong in the domain layer.
package model

import "time"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID         uint   `gorm:"primaryKey"`
	TelegramID int64  `gorm:"column:tg_id;uniqueIndex;not null"`
	Username   string `gorm:"size:100"`
	FirstName  string `gorm:"size:100"`
	LastName   string `gorm:"size:100"`
	IsActive   bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the default GORM table name.
func (UserModel) TableName() string {
	return "users"
}
