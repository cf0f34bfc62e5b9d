package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleFamily  = "family"
	RolePatient = "patient"
)

type User struct {
	gorm.Model
	UserID        string `gorm:"uniqueIndex;size:64;not null"` // public id stamped on documents
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	Role          string `gorm:"size:16;default:family"` // "family" | "patient"
	ResetToken    string
	ResetTokenExp time.Time
}
