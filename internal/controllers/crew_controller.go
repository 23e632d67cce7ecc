package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airport_api/internal/config"
	"airport_api/internal/models"
)

type crewListItem struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

// CreateCrew registers a crew member (admin only)
func CreateCrew(c *gin.Context) {
	var input models.Crew
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create crew member"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

// ListCrew lists all crew members (admin only)
func ListCrew(c *gin.Context) {
	var crew []models.Crew
	if err := config.DB.Find(&crew).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch crew"})
		return
	}

	items := make([]crewListItem, 0, len(crew))
	for _, member := range crew {
		items = append(items, crewListItem{ID: member.ID, FullName: member.FullName()})
	}

	c.JSON(http.StatusOK, gin.H{"results": items})
}
