package controllers

import (
	"net/http"

	"carecompanion/services"

	"github.com/gin-gonic/gin"
)

func (dc *DashboardController) ListRecordings(c *gin.Context) {
	recs := dc.Sessions.ListRecordings(currentUser(c))
	c.JSON(http.StatusOK, gin.H{"recordings": recs})
}

func (dc *DashboardController) UploadRecording(c *gin.Context) {
	var input services.RecordingUpload
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := dc.Sessions.UploadRecording(currentUser(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// PlayRecording starts a recording; anything already playing stops.
func (dc *DashboardController) PlayRecording(c *gin.Context) {
	state, err := dc.Sessions.PlayRecording(currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (dc *DashboardController) PausePlayback(c *gin.Context) {
	dc.Sessions.PausePlayback(currentUser(c))
	c.Status(http.StatusNoContent)
}

func (dc *DashboardController) PlaybackStatus(c *gin.Context) {
	state := dc.Sessions.Playback(currentUser(c))
	if state == nil {
		c.JSON(http.StatusOK, gin.H{"playing": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"playing": true, "playback": state})
}
