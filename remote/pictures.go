package remote

import (
	"carecompanion/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pictures is the only collection with a delete.
type Pictures struct {
	db *gorm.DB
}

func (a Pictures) Create(userID string, doc models.PictureDoc) (string, error) {
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

func (a Pictures) ListForUser(userID string) ([]models.PictureDoc, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	var docs []models.PictureDoc
	err := a.db.Where("user_id = ?", userID).Find(&docs).Error
	return docs, err
}

func (a Pictures) Update(userID, id string, fields map[string]any) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return a.db.Model(&models.PictureDoc{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

func (a Pictures) Delete(userID, id string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return a.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.PictureDoc{}).Error
}
