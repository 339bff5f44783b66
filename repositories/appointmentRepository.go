package repositories

import (
	"CareDesk/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Omit("Patient").Create(appointment).Error
}

// GetAllWithPatients returns every appointment in chronological order with
// the name and contact number of the referenced patient attached.
func (r *AppointmentRepository) GetAllWithPatients(ctx context.Context) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := r.db.WithContext(ctx).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, contact_number")
		}).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindForDoctorBetween returns the appointments booked under doctorName whose
// time lies in [from, to], both ends inclusive.
func (r *AppointmentRepository) FindForDoctorBetween(ctx context.Context, doctorName string, from, to time.Time) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := r.db.WithContext(ctx).
		Where("doctor_name = ?", doctorName).
		Where("appointment_date >= ?", from).
		Where("appointment_date <= ?", to).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, err
}

// CountBetween counts appointments with from <= appointment_date < to.
func (r *AppointmentRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date >= ?", from).
		Where("appointment_date < ?", to).
		Count(&count).Error
	return count, err
}
