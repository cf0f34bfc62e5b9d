package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (dc *DashboardController) ListTodos(c *gin.Context) {
	todos := dc.Sessions.ListTodos(currentUser(c))
	c.JSON(http.StatusOK, gin.H{"todos": todos})
}

func (dc *DashboardController) CreateTodo(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := dc.Sessions.CreateTodo(currentUser(c), input.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func (dc *DashboardController) ToggleTodo(c *gin.Context) {
	todo, err := dc.Sessions.ToggleTodo(currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (dc *DashboardController) DeleteTodo(c *gin.Context) {
	if err := dc.Sessions.DeleteTodo(currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
