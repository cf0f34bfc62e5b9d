package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carecompanion/dashboard"
	"carecompanion/models"
)

// tickingClock advances the manager's clock a minute per call so
// last-modified ordering is observable.
func tickingClock(m *SessionManager) {
	cur := time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)
	m.now = func() time.Time {
		cur = cur.Add(time.Minute)
		return cur
	}
}

func TestCreateNoteTrimsAndStamps(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	note, err := m.CreateNote(user, NoteInput{Title: "  Shopping  ", Content: "  milk, bread  "})
	require.NoError(t, err)
	assert.Equal(t, "Shopping", note.Title)
	assert.Equal(t, "milk, bread", note.Content)
	assert.Equal(t, m.now(), note.LastModified)
	assert.NotEmpty(t, note.ID)
}

func TestCreateNoteRequiresTitleAndContent(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	_, err := m.CreateNote(user, NoteInput{Content: "body"})
	var verr *dashboard.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	// whitespace-only input trims down to empty
	_, err = m.CreateNote(user, NoteInput{Title: "Shopping", Content: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content", verr.Field)
}

func TestNotesListNewestFirst(t *testing.T) {
	m := newTestManager()
	tickingClock(m)
	user := familySession(t, m, "u1")

	first, err := m.CreateNote(user, NoteInput{Title: "First", Content: "a"})
	require.NoError(t, err)
	second, err := m.CreateNote(user, NoteInput{Title: "Second", Content: "b"})
	require.NoError(t, err)

	notes := m.ListNotes(user)
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID)

	// editing the older note bumps it to the top
	_, err = m.UpdateNote(user, first.ID, NoteInput{Title: "First", Content: "edited"})
	require.NoError(t, err)

	notes = m.ListNotes(user)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, "edited", notes[0].Content)
}

func TestPatientMayCreateButNotEditNotes(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	note, err := m.CreateNote(user, NoteInput{Title: "Shopping", Content: "milk"})
	require.NoError(t, err)

	require.NoError(t, m.SetMode(user, dashboard.Patient))

	_, err = m.CreateNote(user, NoteInput{Title: "From patient", Content: "hello"})
	assert.NoError(t, err)

	_, err = m.UpdateNote(user, note.ID, NoteInput{Title: "Shopping", Content: "eggs"})
	assert.ErrorIs(t, err, dashboard.ErrNotAllowed)
	assert.ErrorIs(t, m.DeleteNote(user, note.ID), dashboard.ErrNotAllowed)
}

func TestDeleteNote(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	note, err := m.CreateNote(user, NoteInput{Title: "Shopping", Content: "milk"})
	require.NoError(t, err)

	require.NoError(t, m.DeleteNote(user, note.ID))
	assert.Empty(t, m.ListNotes(user))
	assert.ErrorIs(t, m.DeleteNote(user, note.ID), dashboard.ErrNotFound)
}

func TestNoteDocRoundTrip(t *testing.T) {
	note := models.Note{ID: "n1", Title: "Shopping", Content: "milk"}

	doc := note.Doc("u1")
	assert.Equal(t, "u1", doc.UserID)
	assert.Equal(t, "n1", doc.ID)
	assert.Equal(t, "milk", doc.Description)

	doc.UpdatedAt = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	back := models.NoteFromDoc(doc)
	assert.Equal(t, note.Title, back.Title)
	assert.Equal(t, note.Content, back.Content)
	assert.Equal(t, doc.UpdatedAt, back.LastModified)
}
