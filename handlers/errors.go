package handlers

import (
	"CareDesk/middlewares"
	"CareDesk/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes. Anything unknown is a
// backend failure and is reported as 500 with its message.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrPasswordTooShort), errors.Is(err, services.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	middlewares.HttpError(c, err.Error(), statusFor(err), err)
}
