package routes

import (
	"CareDesk/config"
	"CareDesk/controllers"
	"CareDesk/handlers"
	"CareDesk/middlewares"
	"CareDesk/repositories"
	"CareDesk/services"
	"CareDesk/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Dependencies are the clients built once at startup. Only DB and Identity
// are required; the rest switch optional features on.
type Dependencies struct {
	DB        *gorm.DB
	Identity  services.IdentityAdmin
	AuthUsers services.AuthUserStore
	Locker    services.Locker
	Mailer    services.Mailer
	Tokens    *utils.TokenMaker
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cfg *config.AppConfig, deps Dependencies, log zerolog.Logger) http.Handler {
	if gin.Mode() != gin.TestMode {
		if cfg.IsDev() {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
	}

	router := gin.New()
	router.Use(middlewares.LoggingMiddleware(log))
	router.Use(middlewares.RecoveryMiddleware(log))

	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	limit := middlewares.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}

	patientRepo := repositories.NewPatientRepository(deps.DB)
	doctorRepo := repositories.NewDoctorRepository(deps.DB)
	appointmentRepo := repositories.NewAppointmentRepository(deps.DB)

	notifier := services.NewNotificationService(deps.Mailer, cfg.MailFrom, log)
	if !notifier.Enabled() {
		log.Info().Msg("SMTP not configured, confirmation emails are disabled")
	}

	api := router.Group("/api")

	controllers.SetupPublicRoutes(api,
		handlers.NewBookingHandler(services.NewBookingService(
			appointmentRepo, patientRepo, deps.Identity, deps.Locker, notifier, log,
		)),
		middlewares.NewRateLimiterMiddleware(limit),
	)

	if deps.Tokens != nil && deps.AuthUsers != nil {
		authService := services.NewAuthService(deps.AuthUsers, deps.Tokens)
		controllers.NewAuthController(handlers.NewAuthHandler(authService), authService).
			RegisterRoutes(api, middlewares.NewRateLimiterMiddleware(limit))
	}

	staff := api.Group("", middlewares.ValidateBearerToken(cfg.GetBearerToken()))
	controllers.SetupClinicRoutes(staff, controllers.ClinicHandlers{
		Patients:     handlers.NewPatientHandler(services.NewPatientService(patientRepo)),
		Doctors:      handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo)),
		Appointments: handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo, patientRepo, notifier, log)),
		Dashboard:    handlers.NewDashboardHandler(services.NewDashboardService(patientRepo, doctorRepo, appointmentRepo)),
	})

	controllers.SetupRootRoute(router)

	return router
}
