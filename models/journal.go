package models

import "time"

// JournalEntry is a journal widget record. Like todos, journal entries
// have no collection in the document store.
type JournalEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
}

func (e JournalEntry) ItemID() string { return e.ID }
