package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"airport_api/internal/config"
	"airport_api/internal/models"
	"airport_api/internal/utils"
)

type airplaneListItem struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	Capacity     int    `json:"capacity"`
	AirplaneType string `json:"airplane_type"`
}

func mediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "./media"
}

// CreateAirplane registers a new airplane (admin only)
func CreateAirplane(c *gin.Context) {
	var input struct {
		Name           string `json:"name" binding:"required"`
		Rows           int    `json:"rows" binding:"required,gt=0"`
		SeatsInRow     int    `json:"seats_in_row" binding:"required,gt=0"`
		AirplaneTypeID uint   `json:"airplane_type_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplane := models.Airplane{
		Name:           input.Name,
		Rows:           input.Rows,
		SeatsInRow:     input.SeatsInRow,
		AirplaneTypeID: input.AirplaneTypeID,
	}
	if err := config.DB.Create(&airplane).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "airplane with this name already exists"})
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			c.JSON(http.StatusBadRequest, gin.H{"error": "airplane type does not exist"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create airplane"})
		}
		return
	}

	c.JSON(http.StatusCreated, airplane)
}

// ListAirplanes lists airplanes ordered by name, with derived capacity
func ListAirplanes(c *gin.Context) {
	var airplanes []models.Airplane
	err := config.DB.Preload("AirplaneType").Order("name").Find(&airplanes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch airplanes"})
		return
	}

	items := make([]airplaneListItem, 0, len(airplanes))
	for _, airplane := range airplanes {
		item := airplaneListItem{
			ID:         airplane.ID,
			Name:       airplane.Name,
			Rows:       airplane.Rows,
			SeatsInRow: airplane.SeatsInRow,
			Capacity:   airplane.Capacity(),
		}
		if airplane.AirplaneType != nil {
			item.AirplaneType = airplane.AirplaneType.Name
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{"results": items})
}

// UploadAirplaneImage stores a multipart "image" file for an airplane
// (admin only) and records its path.
func UploadAirplaneImage(c *gin.Context) {
	id := c.Param("id")
	var airplane models.Airplane
	if err := config.DB.First(&airplane, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "airplane not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	path := utils.AirplaneImagePath(mediaRoot(), airplane.Name, file.Filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logrus.WithError(err).Error("UploadAirplaneImage: could not create media dir")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
		return
	}
	if err := c.SaveUploadedFile(file, path); err != nil {
		logrus.WithError(err).Error("UploadAirplaneImage: could not save file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
		return
	}

	airplane.Image = path
	if err := config.DB.Model(&airplane).Update("image", path).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update airplane"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": airplane.ID, "image": airplane.Image})
}
