package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"airport_api/internal/config"
	"airport_api/internal/models"
)

type airportListItem struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	ClosestBigCity string   `json:"closest_big_city"`
	SourceRoutes   []string `json:"source_routes"`
}

// CreateAirport registers a new airport (admin only)
func CreateAirport(c *gin.Context) {
	var input models.Airport
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "airport with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create airport"})
		return
	}

	c.JSON(http.StatusCreated, input)
}

// ListAirports lists airports, optionally filtered by closest big city
// (?city= substring match), with the full routes departing from each.
func ListAirports(c *gin.Context) {
	q := config.DB.
		Preload("SourceRoutes.Source").
		Preload("SourceRoutes.Destination")

	if city := c.Query("city"); city != "" {
		q = q.Where("closest_big_city ILIKE ?", "%"+city+"%")
	}

	var airports []models.Airport
	if err := q.Find(&airports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch airports"})
		return
	}

	items := make([]airportListItem, 0, len(airports))
	for _, airport := range airports {
		routes := make([]string, 0, len(airport.SourceRoutes))
		for _, route := range airport.SourceRoutes {
			routes = append(routes, route.FullRoute())
		}
		items = append(items, airportListItem{
			ID:             airport.ID,
			Name:           airport.Name,
			ClosestBigCity: airport.ClosestBigCity,
			SourceRoutes:   routes,
		})
	}

	c.JSON(http.StatusOK, gin.H{"results": items})
}
