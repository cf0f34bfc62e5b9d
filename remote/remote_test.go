package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carecompanion/models"
)

// Every accessor refuses an empty user id before touching the database,
// so zero-value accessors are enough to exercise the check.

func TestNotesRequireUserID(t *testing.T) {
	var a Notes

	_, err := a.Create("", models.NoteDoc{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = a.ListForUser("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, a.Update("", "id", nil), ErrUnauthenticated)
}

func TestMedsRequireUserID(t *testing.T) {
	var a Meds

	_, err := a.Create("", models.MedicationDoc{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = a.ListForUser("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, a.Update("", "id", nil), ErrUnauthenticated)
}

func TestCalendarRequiresUserID(t *testing.T) {
	var a Calendar

	_, err := a.Create("", models.CalendarEventDoc{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = a.ListForUser("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, a.Update("", "id", nil), ErrUnauthenticated)
}

func TestRecordsRequireUserID(t *testing.T) {
	var a Records

	_, err := a.Create("", models.RecordingDoc{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = a.ListForUser("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, a.Update("", "id", nil), ErrUnauthenticated)
}

func TestPicturesRequireUserID(t *testing.T) {
	var a Pictures

	_, err := a.Create("", models.PictureDoc{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = a.ListForUser("")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, a.Update("", "id", nil), ErrUnauthenticated)
	assert.ErrorIs(t, a.Delete("", "id"), ErrUnauthenticated)
}
