package handlers

import (
	"CareDesk/middlewares"
	"CareDesk/services"
	"CareDesk/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates the user and returns tokens along with user info
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		middlewares.HttpError(c, "Invalid request body", http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateLogin(credentials.Email, credentials.Password); err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			middlewares.HttpError(c, err.Error(), http.StatusUnauthorized, nil)
			return
		}
		respondError(c, err)
		return
	}

	utils.SetAuthCookies(c, result.AccessToken, result.RefreshToken)
	middlewares.RespondJSON(c, result, http.StatusOK)
}

// Me returns the claims of the token presented with the request.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, err := middlewares.ClaimsFromContext(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Unauthorized", http.StatusUnauthorized, err)
		return
	}
	middlewares.RespondJSON(c, claims, http.StatusOK)
}
