package services

import (
	"CareDesk/models"
	"CareDesk/utils"
	"context"

	"github.com/rs/zerolog"
)

// CreateAppointmentRequest is the staff-side appointment payload.
type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id"`
	DoctorName      string `json:"doctor_name"`
	AppointmentDate string `json:"appointment_date"`
	Reason          string `json:"reason"`
}

type AppointmentService struct {
	appointments AppointmentStore
	patients     PatientStore
	notifier     *NotificationService
	log          zerolog.Logger
}

func NewAppointmentService(appointments AppointmentStore, patients PatientStore, notifier *NotificationService, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{appointments: appointments, patients: patients, notifier: notifier, log: log}
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.GetAllWithPatients(ctx)
}

// Create stores the appointment as given and then tries to email the patient.
// No clash check is made here; staff may double-book on purpose.
func (s *AppointmentService) Create(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	when, err := utils.ParseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:       req.PatientID,
		DoctorName:      req.DoctorName,
		AppointmentDate: when,
		Reason:          req.Reason,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.confirm(ctx, appointment)
	return appointment, nil
}

func (s *AppointmentService) confirm(ctx context.Context, appointment *models.Appointment) {
	if !s.notifier.Enabled() {
		return
	}
	patient, err := s.patients.GetByID(ctx, appointment.PatientID)
	if err != nil {
		s.log.Error().Err(err).Str("patient_id", appointment.PatientID).Msg("failed to load patient for confirmation email")
		return
	}
	if patient == nil {
		s.log.Warn().Str("patient_id", appointment.PatientID).Msg("patient not found for confirmation email")
		return
	}
	s.notifier.SendAppointmentConfirmation(ctx, patient.Email, patient.Name, appointment)
}
