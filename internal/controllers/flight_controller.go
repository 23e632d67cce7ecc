package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"airport_api/internal/cache"
	"airport_api/internal/config"
	"airport_api/internal/models"
	"airport_api/internal/utils"
)

const (
	flightPageSize    = 5
	flightMaxPageSize = 10
)

type flightListItem struct {
	ID               uint      `json:"id"`
	FullRoute        string    `json:"full_route"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Airplane         string    `json:"airplane"`
	TicketsAvailable int       `json:"tickets_available"`
}

type takenPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type flightDetail struct {
	Route            routeDetail  `json:"route"`
	DepartureTime    time.Time    `json:"departure_time"`
	ArrivalTime      time.Time    `json:"arrival_time"`
	Airplane         string       `json:"airplane"`
	Crew             []string     `json:"crew"`
	TakenPlaces      []takenPlace `json:"taken_places"`
	TicketsAvailable int          `json:"tickets_available"`
}

// CreateFlight schedules a flight on a route with an airplane and crew
// (admin only)
func CreateFlight(c *gin.Context) {
	var input struct {
		RouteID       uint      `json:"route_id" binding:"required"`
		AirplaneID    uint      `json:"airplane_id" binding:"required"`
		DepartureTime time.Time `json:"departure_time" binding:"required"`
		ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
		CrewIDs       []uint    `json:"crew_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var crew []models.Crew
	if len(input.CrewIDs) > 0 {
		if err := config.DB.Find(&crew, input.CrewIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch crew"})
			return
		}
		if len(crew) != len(input.CrewIDs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "one or more crew members do not exist"})
			return
		}
	}

	flight := models.Flight{
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Crew:          crew,
	}
	if err := config.DB.Create(&flight).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "route or airplane does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create flight"})
		return
	}

	if cache.Flights != nil {
		if err := cache.Flights.InvalidateFlightList(c.Request.Context()); err != nil {
			logrus.WithError(err).Warn("CreateFlight: could not invalidate flight cache")
		}
	}

	c.JSON(http.StatusCreated, flight)
}

// ListFlights lists flights most-recent-departure first, paginated, with
// optional ?source_city= / ?destination_city= substring filters and a
// derived tickets_available count per flight.
func ListFlights(c *gin.Context) {
	pag := utils.GetPagination(c, flightPageSize, flightMaxPageSize)
	sourceCity := c.Query("source_city")
	destinationCity := c.Query("destination_city")

	// The unfiltered first page is the hot read; serve it from Redis when
	// a cache is configured.
	cacheable := cache.Flights != nil &&
		sourceCity == "" && destinationCity == "" &&
		pag.Page == 1 && pag.PageSize == flightPageSize
	if cacheable {
		payload, err := cache.Flights.GetFlightList(c.Request.Context())
		if err != nil {
			logrus.WithError(err).Warn("ListFlights: flight cache read failed")
		} else if payload != nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
	}

	filtered := func(q *gorm.DB) *gorm.DB {
		if sourceCity != "" {
			q = q.Joins("JOIN routes ON routes.id = flights.route_id").
				Joins("JOIN airports AS src ON src.id = routes.source_id").
				Where("src.closest_big_city ILIKE ?", "%"+sourceCity+"%")
		}
		if destinationCity != "" {
			if sourceCity == "" {
				q = q.Joins("JOIN routes ON routes.id = flights.route_id")
			}
			q = q.Joins("JOIN airports AS dst ON dst.id = routes.destination_id").
				Where("dst.closest_big_city ILIKE ?", "%"+destinationCity+"%")
		}
		return q
	}

	var total int64
	if err := filtered(config.DB.Model(&models.Flight{})).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count flights"})
		return
	}

	var flights []models.Flight
	err := filtered(config.DB.Model(&models.Flight{})).
		Preload("Airplane").
		Preload("Route.Source").
		Preload("Route.Destination").
		Order("departure_time DESC").
		Limit(pag.PageSize).
		Offset(pag.Offset).
		Find(&flights).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch flights"})
		return
	}

	booked, err := bookedTicketCounts(flights)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count tickets"})
		return
	}

	items := make([]flightListItem, 0, len(flights))
	for _, flight := range flights {
		item := flightListItem{
			ID:            flight.ID,
			DepartureTime: flight.DepartureTime,
			ArrivalTime:   flight.ArrivalTime,
		}
		if flight.Route != nil {
			item.FullRoute = flight.Route.FullRoute()
		}
		if flight.Airplane != nil {
			item.Airplane = flight.Airplane.Name
			item.TicketsAvailable = flight.Airplane.Capacity() - booked[flight.ID]
		}
		items = append(items, item)
	}

	response := gin.H{
		"count":     total,
		"page":      pag.Page,
		"page_size": pag.PageSize,
		"results":   items,
	}
	payload, err := json.Marshal(response)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode flights"})
		return
	}

	if cacheable {
		if err := cache.Flights.SetFlightList(c.Request.Context(), payload); err != nil {
			logrus.WithError(err).Warn("ListFlights: flight cache write failed")
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GetFlight retrieves a flight with its route, crew and taken seats expanded
func GetFlight(c *gin.Context) {
	id := c.Param("id")
	var flight models.Flight
	err := config.DB.
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane").
		Preload("Crew").
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"row", seat`)
		}).
		First(&flight, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
		return
	}

	detail := flightDetail{
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Crew:          make([]string, 0, len(flight.Crew)),
		TakenPlaces:   make([]takenPlace, 0, len(flight.Tickets)),
	}
	if flight.Route != nil {
		detail.Route = routeDetail{
			Source:      *flight.Route.Source,
			Destination: *flight.Route.Destination,
			Distance:    flight.Route.Distance,
		}
	}
	if flight.Airplane != nil {
		detail.Airplane = flight.Airplane.Name
		detail.TicketsAvailable = flight.Airplane.Capacity() - len(flight.Tickets)
	}
	for _, member := range flight.Crew {
		detail.Crew = append(detail.Crew, member.FullName())
	}
	for _, ticket := range flight.Tickets {
		detail.TakenPlaces = append(detail.TakenPlaces, takenPlace{Row: ticket.Row, Seat: ticket.Seat})
	}

	c.JSON(http.StatusOK, detail)
}

func bookedTicketCounts(flights []models.Flight) (map[uint]int, error) {
	counts := make(map[uint]int, len(flights))
	if len(flights) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(flights))
	for _, flight := range flights {
		ids = append(ids, flight.ID)
	}

	var rows []struct {
		FlightID uint
		Total    int
	}
	err := config.DB.Model(&models.Ticket{}).
		Select("flight_id, count(*) AS total").
		Where("flight_id IN ?", ids).
		Group("flight_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.FlightID] = row.Total
	}
	return counts, nil
}
