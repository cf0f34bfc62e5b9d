package models

import "time"

// Recording is a voice recording the dashboard can play.
type Recording struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (r Recording) ItemID() string { return r.ID }

// RecordingDoc is a document in the records collection.
type RecordingDoc struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    string `gorm:"column:user_id;index;not null"`
	Name      string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RecordingDoc) TableName() string { return "records" }

func RecordingFromDoc(d RecordingDoc) Recording {
	return Recording{ID: d.ID, Name: d.Name, URL: d.URL}
}

func (r Recording) Doc(userID string) RecordingDoc {
	return RecordingDoc{ID: r.ID, UserID: userID, Name: r.Name, URL: r.URL}
}
