package services

import (
	"strings"

	"carecompanion/models"

	"github.com/google/uuid"
)

// Journal entries are session-only, like todos: no collection exists for
// them in the document store.

func (m *SessionManager) ListJournal(user *models.User) []models.JournalEntry {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.journal.View()
}

func (m *SessionManager) CreateJournalEntry(user *models.User, content string) (models.JournalEntry, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	entry := models.JournalEntry{
		ID:      uuid.NewString(),
		Date:    m.now(),
		Content: strings.TrimSpace(content),
	}
	created, err := d.journal.Create(d.mode, entry)
	if err != nil {
		return models.JournalEntry{}, err
	}
	m.confirm.Emit(user.ID, "created", "journal", "Journal entry saved.")
	return created, nil
}

// UpdateJournalEntry rewrites the content and moves the entry to now, the
// same way editing behaved in the app.
func (m *SessionManager) UpdateJournalEntry(user *models.User, id, content string) (models.JournalEntry, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	updated, err := d.journal.Update(d.mode, id, func(e models.JournalEntry) models.JournalEntry {
		e.Content = strings.TrimSpace(content)
		e.Date = m.now()
		return e
	})
	if err != nil {
		return models.JournalEntry{}, err
	}
	m.confirm.Emit(user.ID, "updated", "journal", "Journal entry updated.")
	return updated, nil
}

func (m *SessionManager) DeleteJournalEntry(user *models.User, id string) error {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.journal.Delete(d.mode, id); err != nil {
		return err
	}
	m.confirm.Emit(user.ID, "deleted", "journal", "Journal entry deleted.")
	return nil
}
