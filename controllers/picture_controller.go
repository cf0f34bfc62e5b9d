package controllers

import (
	"net/http"

	"carecompanion/services"

	"github.com/gin-gonic/gin"
)

type PictureController struct {
	Pictures *services.PictureService
}

func NewPictureController(pictures *services.PictureService) *PictureController {
	return &PictureController{Pictures: pictures}
}

func (pc *PictureController) List(c *gin.Context) {
	docs, err := pc.Pictures.List(currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pictures": docs})
}

func (pc *PictureController) Upload(c *gin.Context) {
	var input services.PictureUpload
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := pc.Pictures.Upload(currentUser(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (pc *PictureController) Update(c *gin.Context) {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.Pictures.Update(currentUser(c), c.Param("id"), input.Title, input.Description); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "picture updated"})
}

func (pc *PictureController) Delete(c *gin.Context) {
	if err := pc.Pictures.Delete(currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
