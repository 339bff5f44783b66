package services

import (
	"CareDesk/models"
	"CareDesk/utils"
	"context"
	"time"
)

type PatientStore interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetAll(ctx context.Context) ([]models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetByContactNumber(ctx context.Context, contactNumber string) (*models.Patient, error)
	Count(ctx context.Context) (int64, error)
}

type DoctorStore interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Count(ctx context.Context) (int64, error)
}

type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetAllWithPatients(ctx context.Context) ([]models.Appointment, error)
	FindForDoctorBetween(ctx context.Context, doctorName string, from, to time.Time) ([]models.Appointment, error)
	Count(ctx context.Context) (int64, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// IdentityAdmin provisions login credentials through an administrative API.
type IdentityAdmin interface {
	CreateUser(ctx context.Context, req models.AccountRequest) (*models.AuthUser, error)
}

type AuthUserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.AuthUser, error)
}

type Mailer interface {
	Send(ctx context.Context, msg utils.EmailMessage) error
}

// Locker serialises work on a key across processes.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(context.Context) error, err error)
}

// NoopLocker is used when no lock backend is configured.
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
