package handlers

import (
	"CareDesk/middlewares"
	"CareDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service *services.BookingService
}

func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Book handles self-service bookings from the public site.
func (h *BookingHandler) Book(c *gin.Context) {
	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}

	appointment, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middlewares.RespondJSON(c, gin.H{"success": true, "appointment": appointment}, http.StatusCreated)
}
