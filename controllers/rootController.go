package controllers

import (
	"CareDesk/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRootRoute registers "/" and "/api/health".
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", handlers.Root)
	router.GET("/api/health", handlers.Health)
}
