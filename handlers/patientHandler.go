package handlers

import (
	"CareDesk/middlewares"
	"CareDesk/models"
	"CareDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// createPatientRequest holds the fields a client may set; id and created_at
// are always generated.
type createPatientRequest struct {
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Condition     string `json:"condition"`
	Status        string `json:"status"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req createPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
		return
	}
	patient := models.Patient{
		Name:          req.Name,
		Age:           req.Age,
		Condition:     req.Condition,
		Status:        req.Status,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}
	if err := h.service.Create(c.Request.Context(), &patient); err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, patient, http.StatusCreated)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	middlewares.RespondJSON(c, patients, http.StatusOK)
}
