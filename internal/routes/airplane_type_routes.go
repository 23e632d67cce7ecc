package routes

import (
	"airport_api/internal/controllers"
	"airport_api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AirplaneTypeRoutes(r *gin.Engine) {
	types := r.Group("/airplane-types")
	{
		types.GET("", middleware.RequireAuth(), controllers.ListAirplaneTypes)
		types.POST("", middleware.RequireAdmin(), controllers.CreateAirplaneType)
	}
}
