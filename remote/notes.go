package remote

import (
	"carecompanion/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notes struct {
	db *gorm.DB
}

func (a Notes) Create(userID string, doc models.NoteDoc) (string, error) {
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

func (a Notes) ListForUser(userID string) ([]models.NoteDoc, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	var docs []models.NoteDoc
	err := a.db.Where("user_id = ?", userID).Find(&docs).Error
	return docs, err
}

func (a Notes) Update(userID, id string, fields map[string]any) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return a.db.Model(&models.NoteDoc{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}
