package middlewares

import (
	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError records err on the context for the request logger and writes
// {"error": message} with the given status.
func HttpError(c *gin.Context, message string, status int, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": message})
}
