package routes

import (
	"airport_api/internal/controllers"
	"airport_api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AirplaneRoutes(r *gin.Engine) {
	airplanes := r.Group("/airplanes")
	{
		airplanes.GET("", middleware.RequireAuth(), controllers.ListAirplanes)
		airplanes.POST("", middleware.RequireAdmin(), controllers.CreateAirplane)
		airplanes.POST("/:id/upload-image", middleware.RequireAdmin(), controllers.UploadAirplaneImage)
	}
}
