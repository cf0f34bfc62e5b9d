package controllers

import (
	"net/http"

	"carecompanion/services"

	"github.com/gin-gonic/gin"
)

func (dc *DashboardController) ListMedications(c *gin.Context) {
	meds := dc.Sessions.ListMedications(currentUser(c))
	c.JSON(http.StatusOK, gin.H{"medications": meds})
}

func (dc *DashboardController) CreateMedication(c *gin.Context) {
	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := dc.Sessions.CreateMedication(currentUser(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, med)
}

func (dc *DashboardController) UpdateMedication(c *gin.Context) {
	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := dc.Sessions.UpdateMedication(currentUser(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, med)
}

// ToggleMedicationTaken checks or unchecks today's dose.
func (dc *DashboardController) ToggleMedicationTaken(c *gin.Context) {
	med, err := dc.Sessions.ToggleMedicationTaken(currentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, med)
}

func (dc *DashboardController) DeleteMedication(c *gin.Context) {
	if err := dc.Sessions.DeleteMedication(currentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
