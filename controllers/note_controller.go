package controllers

import (
	"net/http"

	"carecompanion/services"

	"github.com/gin-gonic/gin"
)

func (dc *DashboardController) ListNotes(c *gin.Context) {
	notes := dc.Sessions.ListNotes(currentUser(c))
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func (dc *DashboardController) CreateNote(c *gin.Context) {
	var input services.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := dc.Sessions.CreateNote(currentUser(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (dc *DashboardController) UpdateNote(c *gin.Context) {
	var input services.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := dc.Sessions.UpdateNote(currentUser(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (dc *DashboardController) DeleteNote(c *gin.Context) {
	if err := dc.Sessions.DeleteNote(currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
