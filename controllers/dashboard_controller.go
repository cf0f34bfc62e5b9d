package controllers

import (
	"net/http"

	"carecompanion/dashboard"
	"carecompanion/services"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the widget endpoints off the user's live
// session.
type DashboardController struct {
	Sessions *services.SessionManager
	Confirm  *services.ConfirmBus
}

func NewDashboardController(sessions *services.SessionManager, confirm *services.ConfirmBus) *DashboardController {
	return &DashboardController{Sessions: sessions, Confirm: confirm}
}

// RecentConfirmations lists the latest stored confirmations, newest first.
func (dc *DashboardController) RecentConfirmations(c *gin.Context) {
	confirmations, err := dc.Confirm.Recent(c.GetUint("userID"), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmations": confirmations})
}

// GetMode reports the session's patient/family switch.
func (dc *DashboardController) GetMode(c *gin.Context) {
	mode := dc.Sessions.Mode(currentUser(c))
	c.JSON(http.StatusOK, gin.H{"mode": mode})
}

// SetMode flips the switch.
func (dc *DashboardController) SetMode(c *gin.Context) {
	var input struct {
		Mode string `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.Sessions.SetMode(currentUser(c), dashboard.Role(input.Mode)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": input.Mode})
}

// CloseSession drops the session state, e.g. on logout.
func (dc *DashboardController) CloseSession(c *gin.Context) {
	dc.Sessions.Close(currentUser(c).UserID)
	c.Status(http.StatusNoContent)
}
