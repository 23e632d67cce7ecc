package routes

import (
	"airport_api/internal/controllers"
	"airport_api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RouteRoutes(r *gin.Engine) {
	routes := r.Group("/routes")
	{
		routes.GET("", middleware.RequireAuth(), controllers.ListRoutes)
		routes.GET("/:id", middleware.RequireAuth(), controllers.GetRoute)
		routes.POST("", middleware.RequireAdmin(), controllers.CreateRoute)
	}
}
