package models

import "time"

// Note is the notes widget's local record.
type Note struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"last_modified"`
}

func (n Note) ItemID() string { return n.ID }

// NoteDoc is a document in the notes collection.
type NoteDoc struct {
	ID          string `gorm:"primaryKey;size:64"`
	UserID      string `gorm:"column:user_id;index;not null"`
	Title       string
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (NoteDoc) TableName() string { return "notes" }

func NoteFromDoc(d NoteDoc) Note {
	return Note{
		ID:           d.ID,
		Title:        d.Title,
		Content:      d.Description,
		LastModified: d.UpdatedAt,
	}
}

func (n Note) Doc(userID string) NoteDoc {
	return NoteDoc{
		ID:          n.ID,
		UserID:      userID,
		Title:       n.Title,
		Description: n.Content,
	}
}
