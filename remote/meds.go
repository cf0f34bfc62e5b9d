package remote

import (
	"carecompanion/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Meds struct {
	db *gorm.DB
}

func (a Meds) Create(userID string, doc models.MedicationDoc) (string, error) {
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

func (a Meds) ListForUser(userID string) ([]models.MedicationDoc, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	var docs []models.MedicationDoc
	err := a.db.Where("user_id = ?", userID).Find(&docs).Error
	return docs, err
}

func (a Meds) Update(userID, id string, fields map[string]any) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return a.db.Model(&models.MedicationDoc{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}
