package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Root answers the liveness probe on "/".
func Root(c *gin.Context) {
	c.String(http.StatusOK, "CareDesk API is running")
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"server_time": time.Now().Format(time.RFC3339),
	})
}
