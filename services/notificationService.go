package services

import (
	"CareDesk/models"
	"CareDesk/utils"
	"context"

	"github.com/rs/zerolog"
)

// NotificationService sends appointment confirmations. Every failure stops
// here: it is logged and never returned to the caller.
type NotificationService struct {
	mailer Mailer
	from   string
	log    zerolog.Logger
}

// NewNotificationService returns a service that sends through mailer. A nil
// mailer disables email entirely.
func NewNotificationService(mailer Mailer, from string, log zerolog.Logger) *NotificationService {
	return &NotificationService{mailer: mailer, from: from, log: log}
}

func (s *NotificationService) Enabled() bool {
	return s != nil && s.mailer != nil
}

func (s *NotificationService) SendAppointmentConfirmation(ctx context.Context, to, patientName string, appointment *models.Appointment) {
	if s == nil {
		return
	}
	if s.mailer == nil {
		s.log.Debug().Str("appointment_id", appointment.ID).Msg("email disabled, skipping confirmation")
		return
	}
	if to == "" {
		s.log.Warn().Str("appointment_id", appointment.ID).Msg("no recipient for appointment confirmation")
		return
	}

	subject, html, text, err := utils.RenderAppointmentEmail(utils.AppointmentEmailData{
		PatientName: patientName,
		DoctorName:  appointment.DoctorName,
		When:        appointment.AppointmentDate,
		Reason:      appointment.Reason,
	})
	if err != nil {
		s.log.Error().Err(err).Str("appointment_id", appointment.ID).Msg("failed to render confirmation email")
		return
	}

	err = s.mailer.Send(ctx, utils.EmailMessage{From: s.from, To: to, Subject: subject, HTML: html, Text: text})
	if err != nil {
		s.log.Error().Err(err).Str("appointment_id", appointment.ID).Str("to", to).Msg("failed to send confirmation email")
		return
	}
	s.log.Info().Str("appointment_id", appointment.ID).Str("to", to).Msg("confirmation email sent")
}
