package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"airport_api/internal/config"
	"airport_api/internal/models"
)

// CreateAirplaneType registers a new airplane type (admin only)
func CreateAirplaneType(c *gin.Context) {
	var input models.AirplaneType
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "airplane type with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create airplane type"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

// ListAirplaneTypes lists all airplane types
func ListAirplaneTypes(c *gin.Context) {
	var types []models.AirplaneType
	if err := config.DB.Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch airplane types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": types})
}
