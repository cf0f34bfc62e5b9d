package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (dc *DashboardController) ListJournal(c *gin.Context) {
	entries := dc.Sessions.ListJournal(currentUser(c))
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (dc *DashboardController) CreateJournalEntry(c *gin.Context) {
	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := dc.Sessions.CreateJournalEntry(currentUser(c), input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (dc *DashboardController) UpdateJournalEntry(c *gin.Context) {
	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := dc.Sessions.UpdateJournalEntry(currentUser(c), c.Param("id"), input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (dc *DashboardController) DeleteJournalEntry(c *gin.Context) {
	if err := dc.Sessions.DeleteJournalEntry(currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
