package controllers

import (
	"net/http"
	"time"

	"carecompanion/models"
	"carecompanion/services"

	"github.com/gin-gonic/gin"
)

// ListEvents returns the events for the selected day (?day=YYYY-MM-DD,
// defaulting to today).
func (dc *DashboardController) ListEvents(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		day = time.Now().Format(models.DayLayout)
	}

	events, err := dc.Sessions.EventsOn(currentUser(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "events": events})
}

func (dc *DashboardController) CreateEvent(c *gin.Context) {
	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := dc.Sessions.CreateEvent(currentUser(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (dc *DashboardController) UpdateEvent(c *gin.Context) {
	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := dc.Sessions.UpdateEvent(currentUser(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (dc *DashboardController) DeleteEvent(c *gin.Context) {
	if err := dc.Sessions.DeleteEvent(currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
