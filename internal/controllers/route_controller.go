package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"airport_api/internal/config"
	"airport_api/internal/models"
)

type routeListItem struct {
	ID        uint   `json:"id"`
	FullRoute string `json:"full_route"`
}

type routeDetail struct {
	Source      models.Airport `json:"source"`
	Destination models.Airport `json:"destination"`
	Distance    int            `json:"distance"`
}

// CreateRoute creates a directed route between two airports (admin only).
// Referential integrity is the database's job: an unknown airport id fails
// the FK constraint rather than a pre-check.
func CreateRoute(c *gin.Context) {
	var input struct {
		SourceID      uint `json:"source_id" binding:"required"`
		DestinationID uint `json:"destination_id" binding:"required"`
		Distance      int  `json:"distance" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route := models.Route{
		SourceID:      input.SourceID,
		DestinationID: input.DestinationID,
		Distance:      input.Distance,
	}
	if err := config.DB.Create(&route).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "source or destination airport does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create route"})
		return
	}

	c.JSON(http.StatusCreated, route)
}

// ListRoutes lists all routes as "{source city}-{destination city}" entries
func ListRoutes(c *gin.Context) {
	var routes []models.Route
	err := config.DB.Preload("Source").Preload("Destination").Find(&routes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch routes"})
		return
	}

	items := make([]routeListItem, 0, len(routes))
	for _, route := range routes {
		items = append(items, routeListItem{ID: route.ID, FullRoute: route.FullRoute()})
	}

	c.JSON(http.StatusOK, gin.H{"results": items})
}

// GetRoute retrieves a route with its airports expanded
func GetRoute(c *gin.Context) {
	id := c.Param("id")
	var route models.Route
	err := config.DB.Preload("Source").Preload("Destination").First(&route, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}

	c.JSON(http.StatusOK, routeDetail{
		Source:      *route.Source,
		Destination: *route.Destination,
		Distance:    route.Distance,
	})
}
