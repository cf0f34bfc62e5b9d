package services

import (
	"strings"

	"carecompanion/models"

	"github.com/google/uuid"
)

// The to-do list is session-only: the shipped app never defined a todos
// collection, so nothing here mirrors.

func (m *SessionManager) ListTodos(user *models.User) []models.TodoItem {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.todos.View()
}

func (m *SessionManager) CreateTodo(user *models.User, text string) (models.TodoItem, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	todo := models.TodoItem{
		ID:   uuid.NewString(),
		Text: strings.TrimSpace(text),
	}
	created, err := d.todos.Create(d.mode, todo)
	if err != nil {
		return models.TodoItem{}, err
	}
	m.confirm.Emit(user.ID, "created", "todos", "Task added.")
	return created, nil
}

func (m *SessionManager) ToggleTodo(user *models.User, id string) (models.TodoItem, error) {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	toggled, err := d.todos.Toggle(d.mode, id, func(t models.TodoItem) models.TodoItem {
		t.Completed = !t.Completed
		return t
	})
	if err != nil {
		return models.TodoItem{}, err
	}

	msg := "Task reopened."
	if toggled.Completed {
		msg = "Task completed."
	}
	m.confirm.Emit(user.ID, "toggled", "todos", msg)
	return toggled, nil
}

func (m *SessionManager) DeleteTodo(user *models.User, id string) error {
	d := m.Dashboard(user)
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.todos.Delete(d.mode, id); err != nil {
		return err
	}
	m.confirm.Emit(user.ID, "deleted", "todos", "Task removed.")
	return nil
}
