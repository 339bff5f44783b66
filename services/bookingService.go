package services

import (
	"CareDesk/models"
	"CareDesk/utils"
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ClashWindow is how close two appointments for the same doctor may be.
// Both ends of the window are inclusive.
const ClashWindow = 30 * time.Minute

// BookingRequest is the self-service booking payload.
type BookingRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Age             int    `json:"age"`
	Condition       string `json:"condition"`
	ContactNumber   string `json:"contact_number"`
	DoctorName      string `json:"doctor_name"`
	DoctorSpecialty string `json:"doctor_specialty"`
	AppointmentDate string `json:"appointment_date"`
	Reason          string `json:"reason"`
	Password        string `json:"password"`
}

type BookingService struct {
	appointments AppointmentStore
	patients     PatientStore
	identity     IdentityAdmin
	locker       Locker
	notifier     *NotificationService
	log          zerolog.Logger
}

func NewBookingService(
	appointments AppointmentStore,
	patients PatientStore,
	identity IdentityAdmin,
	locker Locker,
	notifier *NotificationService,
	log zerolog.Logger,
) *BookingService {
	if locker == nil {
		locker = NoopLocker{}
	}
	return &BookingService{
		appointments: appointments,
		patients:     patients,
		identity:     identity,
		locker:       locker,
		notifier:     notifier,
		log:          log,
	}
}

// Book checks the doctor's slot, resolves or registers the patient by contact
// number, stores the appointment and sends a best-effort confirmation.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	when, err := utils.ParseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}
	doctorName := models.DoctorDisplayName(req.DoctorName, req.DoctorSpecialty)

	clashes, err := s.appointments.FindForDoctorBetween(ctx, doctorName, when.Add(-ClashWindow), when.Add(ClashWindow))
	if err != nil {
		return nil, err
	}
	if len(clashes) > 0 {
		return nil, ErrSlotTaken
	}

	patientID, err := s.resolvePatient(ctx, req)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:       patientID,
		DoctorName:      doctorName,
		AppointmentDate: when,
		Reason:          req.Reason,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.notifier.SendAppointmentConfirmation(ctx, req.Email, req.Name, appointment)
	return appointment, nil
}

// resolvePatient returns the id of the patient with the request's contact
// number, registering an account and a patient record when there is none.
func (s *BookingService) resolvePatient(ctx context.Context, req BookingRequest) (string, error) {
	unlock, err := s.locker.Lock(ctx, "booking_lock:"+req.ContactNumber)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn().Err(err).Msg("failed to release booking lock")
		}
	}()

	existing, err := s.patients.GetByContactNumber(ctx, req.ContactNumber)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}

	if err := utils.ValidateNewAccountPassword(req.Password); err != nil {
		return "", ErrPasswordTooShort
	}

	account, err := s.identity.CreateUser(ctx, models.AccountRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.RolePatient,
	})
	if err != nil {
		return "", &AccountError{Err: err}
	}
	s.log.Info().Str("account_id", account.ID).Msg("patient account provisioned")

	patient := &models.Patient{
		Name:          req.Name,
		Age:           req.Age,
		Condition:     req.Condition,
		Status:        models.PatientStatusOutpatient,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return "", err
	}
	return patient.ID, nil
}
