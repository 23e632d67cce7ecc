package routes

import (
	"airport_api/internal/controllers"
	"airport_api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth())
	{
		orders.GET("", controllers.ListOrders)
		orders.POST("", controllers.CreateOrder)
	}
}
