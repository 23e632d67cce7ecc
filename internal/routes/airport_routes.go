package routes

import (
	"airport_api/internal/controllers"
	"airport_api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AirportRoutes(r *gin.Engine) {
	airports := r.Group("/airports")
	{
		airports.GET("", middleware.RequireAuth(), controllers.ListAirports)
		airports.POST("", middleware.RequireAdmin(), controllers.CreateAirport)
	}
}
