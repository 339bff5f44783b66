package controllers

import (
	"CareDesk/handlers"
	"CareDesk/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler   *handlers.AuthHandler
	Validator middlewares.TokenValidator
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler, validator middlewares.TokenValidator) *AuthController {
	return &AuthController{
		Handler:   authHandler,
		Validator: validator,
	}
}

// RegisterRoutes adds the login route and the token-protected routes.
func (ac *AuthController) RegisterRoutes(api *gin.RouterGroup, loginGuards ...gin.HandlerFunc) {
	auth := api.Group("/auth")

	// Public routes: No authentication required
	login := append(append([]gin.HandlerFunc{}, loginGuards...), ac.Handler.Login)
	auth.POST("/login", login...)

	// Protected routes: Requires a valid token
	auth.GET("/me", middlewares.TokenAuthMiddleware(ac.Validator), ac.Handler.Me)
}
