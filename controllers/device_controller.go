package controllers

import (
	"net/http"

	"carecompanion/config"
	"carecompanion/models"
	"carecompanion/services"

	"github.com/gin-gonic/gin"
)

type DeviceController struct {
	Push *services.PushService
}

func NewDeviceController(push *services.PushService) *DeviceController {
	return &DeviceController{Push: push}
}

type registerDeviceReq struct {
	Platform string `json:"platform" binding:"required"` // "android" | "ios"
	Token    string `json:"token" binding:"required"`
}

// Register enrolls a device for confirmation pushes.
func (dc *DeviceController) Register(c *gin.Context) {
	uid := c.GetUint("userID")

	var req registerDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if dc.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push not configured"})
		return
	}

	dev, err := dc.Push.RegisterDevice(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"device_id": dev.ID, "platform": dev.Platform})
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// ToggleNotifications enables or disables pushes for all of the user's
// devices.
func (dc *DeviceController) ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}
