package model

import "time"

// MailingModel is the GORM model for the mailings table.
type MailingModel struct {
	ID        uint `gorm:"primaryKey"`
	Text      string
	MediaFile string
	SendAt    time.Time `gorm:"not null"`
	Sent      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default GORM table name.
func (MailingModel) TableName() string {
	return "mailings"
}
