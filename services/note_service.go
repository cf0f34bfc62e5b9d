package services

import (
	"strings"

	"carecompanion/models"

	"github.com/google/uuid"
)

type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (m *SessionManager) ListNotes(user *models.User) []models.Note {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.notes.View()
}

func (m *SessionManager) CreateNote(user *models.User, in NoteInput) (models.Note, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	note := models.Note{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Content:      strings.TrimSpace(in.Content),
		LastModified: m.now(),
	}
	created, err := d.notes.Create(d.mode, note)
	if err != nil {
		return models.Note{}, err
	}

	m.mirror("notes", func() error {
		_, err := m.remote.Notes.Create(user.UserID, created.Doc(user.UserID))
		return err
	})
	m.confirm.Emit(user.ID, "created", "notes", "Note saved.")
	return created, nil
}

func (m *SessionManager) UpdateNote(user *models.User, id string, in NoteInput) (models.Note, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	updated, err := d.notes.Update(d.mode, id, func(n models.Note) models.Note {
		n.Title = strings.TrimSpace(in.Title)
		n.Content = strings.TrimSpace(in.Content)
		n.LastModified = m.now()
		return n
	})
	if err != nil {
		return models.Note{}, err
	}

	m.mirror("notes", func() error {
		return m.remote.Notes.Update(user.UserID, id, map[string]any{
			"title":       updated.Title,
			"description": updated.Content,
		})
	})
	m.confirm.Emit(user.ID, "updated", "notes", "Note updated.")
	return updated, nil
}

// DeleteNote only touches the session; the notes collection has no delete,
// so the stored copy outlives the local one.
func (m *SessionManager) DeleteNote(user *models.User, id string) error {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.notes.Delete(d.mode, id); err != nil {
		return err
	}
	m.confirm.Emit(user.ID, "deleted", "notes", "Note deleted.")
	return nil
}
