package services

import (
	"fmt"
	"strings"

	"carecompanion/models"
	"carecompanion/remote"
	"carecompanion/utils"
)

// PictureService manages the pictures collection. Pictures never had a
// dashboard widget; the app talks to the collection directly, and it is
// the only one with a remote delete.
type PictureService struct {
	remote *remote.Client
}

func NewPictureService(rc *remote.Client) *PictureService {
	return &PictureService{remote: rc}
}

type PictureUpload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
}

// Upload screens the image, stores it in S3 and creates the document.
func (s *PictureService) Upload(user *models.User, in PictureUpload) (*models.PictureDoc, error) {
	raw, contentType, err := utils.DecodeBase64Media(in.ImageBase64)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(contentType, "image/") {
		labels, err := utils.DetectModerationLabels(raw)
		if err != nil {
			return nil, fmt.Errorf("moderation check failed: %v", err)
		}
		if len(labels) > 0 {
			return nil, fmt.Errorf("image rejected: %s", strings.Join(labels, ", "))
		}
	}

	url, err := utils.UploadToS3(raw, contentType, "pictures/"+user.UserID)
	if err != nil {
		return nil, err
	}

	doc := models.PictureDoc{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		URL:         url,
	}
	id, err := s.remote.Pictures.Create(user.UserID, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	doc.UserID = user.UserID
	return &doc, nil
}

func (s *PictureService) List(user *models.User) ([]models.PictureDoc, error) {
	return s.remote.Pictures.ListForUser(user.UserID)
}

func (s *PictureService) Update(user *models.User, id, title, description string) error {
	return s.remote.Pictures.Update(user.UserID, id, map[string]any{
		"title":       strings.TrimSpace(title),
		"description": strings.TrimSpace(description),
	})
}

func (s *PictureService) Delete(user *models.User, id string) error {
	return s.remote.Pictures.Delete(user.UserID, id)
}
