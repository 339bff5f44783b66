package controllers

import (
	"CareDesk/handlers"

	"github.com/gin-gonic/gin"
)

// ClinicHandlers groups the handlers behind the staff routes.
type ClinicHandlers struct {
	Patients     *handlers.PatientHandler
	Doctors      *handlers.DoctorHandler
	Appointments *handlers.AppointmentHandler
	Dashboard    *handlers.DashboardHandler
}

// SetupClinicRoutes registers the staff routes on the given group.
func SetupClinicRoutes(api *gin.RouterGroup, h ClinicHandlers) {
	api.GET("/patients", h.Patients.GetAllPatients)
	api.POST("/patients", h.Patients.CreatePatient)

	api.GET("/appointments", h.Appointments.GetAllAppointments)
	api.POST("/appointments", h.Appointments.CreateAppointment)

	api.GET("/doctors", h.Doctors.GetAllDoctors)

	api.GET("/dashboard/stats", h.Dashboard.GetStats)
}

// SetupPublicRoutes registers the self-service booking route. Extra handlers,
// such as a rate limiter, run before the booking handler.
func SetupPublicRoutes(api *gin.RouterGroup, booking *handlers.BookingHandler, guards ...gin.HandlerFunc) {
	public := api.Group("/public", guards...)
	public.POST("/book", booking.Book)
}
