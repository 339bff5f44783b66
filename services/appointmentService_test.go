package services

import (
	"CareDesk/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentCreate_EmailsPatient(t *testing.T) {
	patients := &memPatients{rows: []models.Patient{{ID: "p1", Name: "Ann", Email: "ann@example.com"}}}
	appointments := &memAppointments{}
	mailer := &fakeMailer{}
	service := NewAppointmentService(appointments, patients, NewNotificationService(mailer, "clinic@example.com", zerolog.Nop()), zerolog.Nop())

	appointment, err := service.Create(context.Background(), CreateAppointmentRequest{
		PatientID:       "p1",
		DoctorName:      "Dr Who (GP)",
		AppointmentDate: "2025-03-01T10:00:00Z",
		Reason:          "Flu",
	})
	require.NoError(t, err)
	assert.Equal(t, "appointment-1", appointment.ID)
	assert.True(t, appointment.AppointmentDate.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ann@example.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Text, "Dear Ann")
}

func TestAppointmentCreate_MissingPatientIsLoggedOnly(t *testing.T) {
	appointments := &memAppointments{}
	mailer := &fakeMailer{}
	service := NewAppointmentService(appointments, &memPatients{}, NewNotificationService(mailer, "clinic@example.com", zerolog.Nop()), zerolog.Nop())

	_, err := service.Create(context.Background(), CreateAppointmentRequest{
		PatientID:       "unknown",
		DoctorName:      "Dr Who (GP)",
		AppointmentDate: "2025-03-01T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
	assert.Len(t, appointments.rows, 1)
}

func TestAppointmentCreate_EmailFailureStillSucceeds(t *testing.T) {
	patients := &memPatients{rows: []models.Patient{{ID: "p1", Name: "Ann", Email: "ann@example.com"}}}
	appointments := &memAppointments{}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	service := NewAppointmentService(appointments, patients, NewNotificationService(mailer, "clinic@example.com", zerolog.Nop()), zerolog.Nop())

	appointment, err := service.Create(context.Background(), CreateAppointmentRequest{
		PatientID:       "p1",
		DoctorName:      "Dr Who (GP)",
		AppointmentDate: "2025-03-01T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "appointment-1", appointment.ID)
	assert.Len(t, appointments.rows, 1)
	assert.Empty(t, mailer.sent)
}

func TestAppointmentCreate_PatientLookupFailureStillSucceeds(t *testing.T) {
	patients := &memPatients{getErr: errors.New("connection reset by peer")}
	appointments := &memAppointments{}
	mailer := &fakeMailer{}
	service := NewAppointmentService(appointments, patients, NewNotificationService(mailer, "clinic@example.com", zerolog.Nop()), zerolog.Nop())

	appointment, err := service.Create(context.Background(), CreateAppointmentRequest{
		PatientID:       "p1",
		DoctorName:      "Dr Who (GP)",
		AppointmentDate: "2025-03-01T10:00:00Z",
	})
	require.NoError(t, err)
	assert.NotNil(t, appointment)
	assert.Len(t, appointments.rows, 1)
	assert.Empty(t, mailer.sent)
}

func TestAppointmentCreate_BackendError(t *testing.T) {
	appointments := &memAppointments{createErr: errors.New("insert or update on table \"appointments\" violates foreign key constraint")}
	service := NewAppointmentService(appointments, &memPatients{}, nil, zerolog.Nop())

	_, err := service.Create(context.Background(), CreateAppointmentRequest{
		PatientID:       "p1",
		AppointmentDate: "2025-03-01T10:00:00Z",
	})
	assert.EqualError(t, err, "insert or update on table \"appointments\" violates foreign key constraint")
}

func TestAppointmentCreate_InvalidDate(t *testing.T) {
	service := NewAppointmentService(&memAppointments{}, &memPatients{}, nil, zerolog.Nop())

	_, err := service.Create(context.Background(), CreateAppointmentRequest{PatientID: "p1", AppointmentDate: ""})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNotificationService_NilIsDisabled(t *testing.T) {
	var notifier *NotificationService
	assert.False(t, notifier.Enabled())
	assert.NotPanics(t, func() {
		notifier.SendAppointmentConfirmation(context.Background(), "a@example.com", "A", &models.Appointment{})
	})

	assert.False(t, NewNotificationService(nil, "", zerolog.Nop()).Enabled())
}
