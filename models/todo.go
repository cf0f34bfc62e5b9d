package models

// TodoItem is a to-do list entry. There is no todos collection in the
// document store; the list lives only for the session.
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (t TodoItem) ItemID() string { return t.ID }
