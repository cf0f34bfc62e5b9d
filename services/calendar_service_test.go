package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carecompanion/dashboard"
)

func TestEventsOnFiltersBySelectedDay(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	_, err := m.CreateEvent(user, EventInput{Date: "2024-06-01", Title: "Doctor visit"})
	require.NoError(t, err)
	_, err = m.CreateEvent(user, EventInput{Date: "2024-06-01", Title: "Lunch with Anna"})
	require.NoError(t, err)
	_, err = m.CreateEvent(user, EventInput{Date: "2024-06-02", Title: "Physio"})
	require.NoError(t, err)

	first, err := m.EventsOn(user, "2024-06-01")
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := m.EventsOn(user, "2024-06-02")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Physio", second[0].Title)

	empty, err := m.EventsOn(user, "2024-06-03")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEventsOnRejectsBadDay(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	_, err := m.EventsOn(user, "June 1st")
	var verr *dashboard.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "day", verr.Field)
}

func TestCreateEventValidation(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	_, err := m.CreateEvent(user, EventInput{Date: "01-06-2024", Title: "Backwards"})
	var verr *dashboard.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)

	_, err = m.CreateEvent(user, EventInput{Date: "2024-06-01"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, dashboard.ReasonRequired, verr.Reason)
}

func TestCalendarIsFamilyOnly(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	ev, err := m.CreateEvent(user, EventInput{Date: "2024-06-01", Title: "Doctor visit"})
	require.NoError(t, err)

	require.NoError(t, m.SetMode(user, dashboard.Patient))

	_, err = m.CreateEvent(user, EventInput{Date: "2024-06-01", Title: "Sneaky"})
	assert.ErrorIs(t, err, dashboard.ErrNotAllowed)
	_, err = m.UpdateEvent(user, ev.ID, EventInput{Date: "2024-06-01", Title: "Edited"})
	assert.ErrorIs(t, err, dashboard.ErrNotAllowed)
	assert.ErrorIs(t, m.DeleteEvent(user, ev.ID), dashboard.ErrNotAllowed)

	// reads stay open
	events, err := m.EventsOn(user, "2024-06-01")
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestUpdateEventMovesDay(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	ev, err := m.CreateEvent(user, EventInput{Date: "2024-06-01", Title: "Doctor visit", Description: "bring meds list"})
	require.NoError(t, err)

	updated, err := m.UpdateEvent(user, ev.ID, EventInput{Date: "2024-06-05", Title: "Doctor visit", Description: "rescheduled"})
	require.NoError(t, err)
	assert.Equal(t, "rescheduled", updated.Description)

	old, err := m.EventsOn(user, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, old)

	moved, err := m.EventsOn(user, "2024-06-05")
	require.NoError(t, err)
	assert.Len(t, moved, 1)
}
