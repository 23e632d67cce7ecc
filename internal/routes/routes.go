package routes

import (
	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all resource routes registered.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(cors.Default())

	AuthRoutes(r)
	AirportRoutes(r)
	RouteRoutes(r)
	AirplaneTypeRoutes(r)
	AirplaneRoutes(r)
	CrewRoutes(r)
	FlightRoutes(r)
	OrderRoutes(r)

	return r
}
