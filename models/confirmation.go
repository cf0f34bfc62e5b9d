package models

import "time"

// Confirmation is the user-visible acknowledgement of a successful
// mutation ("Journal entry saved." and friends).
type Confirmation struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Action    string `gorm:"size:32"` // "created" | "updated" | "deleted" | "toggled"
	Widget    string `gorm:"size:32"`
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
