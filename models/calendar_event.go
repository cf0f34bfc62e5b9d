package models

import "time"

// CalendarEvent is a calendar widget record. Events belong to a calendar
// day; the time-of-day component of Date is not significant.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
}

func (e CalendarEvent) ItemID() string { return e.ID }

// CalendarEventDoc is a document in the calendar collection. The table
// keeps the misspelled name the shipped app created; existing data lives
// there.
type CalendarEventDoc struct {
	ID          string `gorm:"primaryKey;size:64"`
	UserID      string `gorm:"column:user_id;index;not null"`
	Title       string
	Description string `gorm:"type:text"`
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CalendarEventDoc) TableName() string { return "calender" }

func CalendarEventFromDoc(d CalendarEventDoc) CalendarEvent {
	return CalendarEvent{
		ID:          d.ID,
		Date:        d.Date,
		Title:       d.Title,
		Description: d.Description,
	}
}

func (e CalendarEvent) Doc(userID string) CalendarEventDoc {
	return CalendarEventDoc{
		ID:          e.ID,
		UserID:      userID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
	}
}
