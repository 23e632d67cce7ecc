package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"airport_api/internal/config"
	"airport_api/internal/models"
	"airport_api/internal/utils"
)

const (
	orderPageSize    = 5
	orderMaxPageSize = 10
)

// Row and seat deliberately carry no binding rules: the seat validator owns
// range checking so the error names the offending field and its range.
type ticketInput struct {
	Row      int  `json:"row"`
	Seat     int  `json:"seat"`
	FlightID uint `json:"flight_id" binding:"required"`
}

type createOrderInput struct {
	Tickets []ticketInput `json:"tickets" binding:"required,min=1,dive"`
}

type orderTicket struct {
	ID       uint `json:"id"`
	Row      int  `json:"row"`
	Seat     int  `json:"seat"`
	FlightID uint `json:"flight_id"`
}

type orderResponse struct {
	ID        uint          `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Tickets   []orderTicket `json:"tickets"`
}

type ticketFlight struct {
	ID            uint      `json:"id"`
	FullRoute     string    `json:"full_route"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Airplane      string    `json:"airplane"`
}

type orderListTicket struct {
	ID     uint         `json:"id"`
	Row    int          `json:"row"`
	Seat   int          `json:"seat"`
	Flight ticketFlight `json:"flight"`
}

type orderListItem struct {
	ID        uint              `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Tickets   []orderListTicket `json:"tickets"`
}

// CreateOrder books one or more seats for the authenticated user. Every
// ticket is bounds-checked against its airplane's seat grid before anything
// is written; the order and its tickets then commit as one transaction.
// Seat collisions are not pre-checked — the unique (flight, row, seat)
// index decides the winner of any race at insert time.
func CreateOrder(c *gin.Context) {
	userID := currentUserID(c)

	var input createOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flights := make(map[uint]models.Flight, len(input.Tickets))
	for _, ticket := range input.Tickets {
		if _, ok := flights[ticket.FlightID]; ok {
			continue
		}
		var flight models.Flight
		err := config.DB.Preload("Airplane").First(&flight, ticket.FlightID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "flight not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch flight"})
			return
		}
		flights[ticket.FlightID] = flight
	}

	for _, ticket := range input.Tickets {
		flight := flights[ticket.FlightID]
		if err := models.ValidateSeat(ticket.Row, ticket.Seat, *flight.Airplane); err != nil {
			var seatErr *models.SeatValidationError
			if errors.As(err, &seatErr) {
				c.JSON(http.StatusBadRequest, gin.H{seatErr.Field: seatErr.Message})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	order := models.Order{UserID: userID}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateOrder: could not create order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order"})
		return
	}

	created := make([]orderTicket, 0, len(input.Tickets))
	for _, spec := range input.Tickets {
		ticket := models.Ticket{
			Row:      spec.Row,
			Seat:     spec.Seat,
			OrderID:  order.ID,
			FlightID: spec.FlightID,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "seat is already taken on this flight"})
				return
			}
			logrus.WithError(err).Error("CreateOrder: could not create ticket")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create ticket"})
			return
		}
		created = append(created, orderTicket{
			ID:       ticket.ID,
			Row:      ticket.Row,
			Seat:     ticket.Seat,
			FlightID: ticket.FlightID,
		})
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit order"})
		return
	}

	c.JSON(http.StatusCreated, orderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Tickets:   created,
	})
}

// ListOrders lists the authenticated user's orders, newest first, paginated,
// with each ticket's flight expanded to its list projection.
func ListOrders(c *gin.Context) {
	userID := currentUserID(c)
	pag := utils.GetPagination(c, orderPageSize, orderMaxPageSize)

	var total int64
	err := config.DB.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count orders"})
		return
	}

	var orders []models.Order
	err = config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pag.PageSize).
		Offset(pag.Offset).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"row", seat`)
		}).
		Preload("Tickets.Flight.Airplane").
		Preload("Tickets.Flight.Route.Source").
		Preload("Tickets.Flight.Route.Destination").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch orders"})
		return
	}

	items := make([]orderListItem, 0, len(orders))
	for _, order := range orders {
		item := orderListItem{
			ID:        order.ID,
			CreatedAt: order.CreatedAt,
			Tickets:   make([]orderListTicket, 0, len(order.Tickets)),
		}
		for _, ticket := range order.Tickets {
			listTicket := orderListTicket{
				ID:   ticket.ID,
				Row:  ticket.Row,
				Seat: ticket.Seat,
			}
			if ticket.Flight != nil {
				listTicket.Flight = ticketFlight{
					ID:            ticket.Flight.ID,
					DepartureTime: ticket.Flight.DepartureTime,
					ArrivalTime:   ticket.Flight.ArrivalTime,
				}
				if ticket.Flight.Route != nil {
					listTicket.Flight.FullRoute = ticket.Flight.Route.FullRoute()
				}
				if ticket.Flight.Airplane != nil {
					listTicket.Flight.Airplane = ticket.Flight.Airplane.Name
				}
			}
			item.Tickets = append(item.Tickets, listTicket)
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     total,
		"page":      pag.Page,
		"page_size": pag.PageSize,
		"results":   items,
	})
}
