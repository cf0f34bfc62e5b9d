package models

import "time"

// PictureDoc is a document in the pictures collection. Pictures have no
// widget store; they live only remotely, and this is the one collection
// with a delete.
type PictureDoc struct {
	ID          string `gorm:"primaryKey;size:64"`
	UserID      string `gorm:"column:user_id;index;not null"`
	Title       string
	Description string `gorm:"type:text"`
	URL         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PictureDoc) TableName() string { return "pictures" }
