package remote

import (
	"carecompanion/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Calendar struct {
	db *gorm.DB
}

func (a Calendar) Create(userID string, doc models.CalendarEventDoc) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	doc.UserID = userID
	if err := a.db.Create(&doc).Error; err != nil {
		return "", err
	}
	return doc.ID, nil
}

func (a Calendar) ListForUser(userID string) ([]models.CalendarEventDoc, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	var docs []models.CalendarEventDoc
	err := a.db.Where("user_id = ?", userID).Find(&docs).Error
	return docs, err
}

func (a Calendar) Update(userID, id string, fields map[string]any) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return a.db.Model(&models.CalendarEventDoc{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}
