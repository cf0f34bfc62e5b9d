package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the signed-in account.
func GetProfile(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id": user.UserID,
		"email":   user.Email,
		"role":    user.Role,
	})
}
