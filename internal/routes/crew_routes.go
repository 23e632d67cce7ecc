package routes

import (
	"airport_api/internal/controllers"
	"airport_api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Crew data is administrator territory on both read and write.
func CrewRoutes(r *gin.Engine) {
	crew := r.Group("/crews")
	crew.Use(middleware.RequireAdmin())
	{
		crew.GET("", controllers.ListCrew)
		crew.POST("", controllers.CreateCrew)
	}
}
