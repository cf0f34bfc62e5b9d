package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carecompanion/dashboard"
)

func TestCreateTodo(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	todo, err := m.CreateTodo(user, "  water the plants  ")
	require.NoError(t, err)
	assert.Equal(t, "water the plants", todo.Text)
	assert.False(t, todo.Completed)

	_, err = m.CreateTodo(user, "   ")
	var verr *dashboard.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "text", verr.Field)
}

func TestToggleTodo(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	todo, err := m.CreateTodo(user, "water the plants")
	require.NoError(t, err)

	done, err := m.ToggleTodo(user, todo.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	reopened, err := m.ToggleTodo(user, todo.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)

	_, err = m.ToggleTodo(user, "missing")
	assert.ErrorIs(t, err, dashboard.ErrNotFound)
}

func TestPatientMayToggleButNotManageTodos(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	todo, err := m.CreateTodo(user, "water the plants")
	require.NoError(t, err)

	require.NoError(t, m.SetMode(user, dashboard.Patient))

	_, err = m.CreateTodo(user, "another task")
	assert.ErrorIs(t, err, dashboard.ErrNotAllowed)
	assert.ErrorIs(t, m.DeleteTodo(user, todo.ID), dashboard.ErrNotAllowed)

	_, err = m.ToggleTodo(user, todo.ID)
	assert.NoError(t, err)
}

func TestDeleteTodo(t *testing.T) {
	m := newTestManager()
	user := familySession(t, m, "u1")

	todo, err := m.CreateTodo(user, "water the plants")
	require.NoError(t, err)
	keep, err := m.CreateTodo(user, "call the clinic")
	require.NoError(t, err)

	require.NoError(t, m.DeleteTodo(user, todo.ID))

	todos := m.ListTodos(user)
	require.Len(t, todos, 1)
	assert.Equal(t, keep.ID, todos[0].ID)
}
