package routes

import (
	"airport_api/internal/controllers"
	"airport_api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func FlightRoutes(r *gin.Engine) {
	flights := r.Group("/flights")
	{
		flights.GET("", middleware.RequireAuth(), controllers.ListFlights)
		flights.GET("/:id", middleware.RequireAuth(), controllers.GetFlight)
		flights.POST("", middleware.RequireAdmin(), controllers.CreateFlight)
	}
}
