package services

import (
	"strings"
	"time"

	"carecompanion/dashboard"
	"carecompanion/models"

	"github.com/google/uuid"
)

type EventInput struct {
	Date        string `json:"date"` // "YYYY-MM-DD"
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EventsOn derives the calendar view for one selected day. Events match by
// calendar day, so the time-of-day on a stored event does not matter.
func (m *SessionManager) EventsOn(user *models.User, day string) ([]models.CalendarEvent, error) {
	selected, err := time.ParseInLocation(models.DayLayout, day, time.Local)
	if err != nil {
		return nil, dashboard.InvalidFormat("day")
	}

	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.CalendarEvent
	for _, ev := range d.calendar.View() {
		if sameDay(ev.Date, selected) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *SessionManager) CreateEvent(user *models.User, in EventInput) (models.CalendarEvent, error) {
	date, err := time.ParseInLocation(models.DayLayout, in.Date, time.Local)
	if err != nil {
		return models.CalendarEvent{}, dashboard.InvalidFormat("date")
	}

	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	event := models.CalendarEvent{
		ID:          uuid.NewString(),
		Date:        date,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
	}
	created, err := d.calendar.Create(d.mode, event)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	m.mirror("calendar", func() error {
		_, err := m.remote.Calendar.Create(user.UserID, created.Doc(user.UserID))
		return err
	})
	m.confirm.Emit(user.ID, "created", "calendar", "Added event for "+in.Date+".")
	return created, nil
}

func (m *SessionManager) UpdateEvent(user *models.User, id string, in EventInput) (models.CalendarEvent, error) {
	date, err := time.ParseInLocation(models.DayLayout, in.Date, time.Local)
	if err != nil {
		return models.CalendarEvent{}, dashboard.InvalidFormat("date")
	}

	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	updated, err := d.calendar.Update(d.mode, id, func(e models.CalendarEvent) models.CalendarEvent {
		e.Date = date
		e.Title = strings.TrimSpace(in.Title)
		e.Description = strings.TrimSpace(in.Description)
		return e
	})
	if err != nil {
		return models.CalendarEvent{}, err
	}

	m.mirror("calendar", func() error {
		return m.remote.Calendar.Update(user.UserID, id, map[string]any{
			"title":       updated.Title,
			"description": updated.Description,
			"date":        updated.Date,
		})
	})
	m.confirm.Emit(user.ID, "updated", "calendar", "Event updated.")
	return updated, nil
}

// DeleteEvent is local-only; the calendar collection has no delete.
func (m *SessionManager) DeleteEvent(user *models.User, id string) error {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.calendar.Delete(d.mode, id); err != nil {
		return err
	}
	m.confirm.Emit(user.ID, "deleted", "calendar", "Event has been deleted.")
	return nil
}
