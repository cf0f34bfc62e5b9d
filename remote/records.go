package remote

import (
	"carecompanion/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Records struct {
	db *gorm.DB
}

func (a Records) Create(userID string, doc models.RecordingDoc) (string, error) {
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

func (a Records) ListForUser(userID string) ([]models.RecordingDoc, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	var docs []models.RecordingDoc
	err := a.db.Where("user_id = ?", userID).Find(&docs).Error
	return docs, err
}

func (a Records) Update(userID, id string, fields map[string]any) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return a.db.Model(&models.RecordingDoc{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}
