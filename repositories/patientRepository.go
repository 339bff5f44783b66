package repositories

import (
	"CareDesk/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

// GetAll returns every patient, newest first.
func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetByContactNumber looks a patient up by exact contact number match.
// It returns nil without an error when nobody matches.
func (r *PatientRepository) GetByContactNumber(ctx context.Context, contactNumber string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).
		Select("id").
		Where("contact_number = ?", contactNumber).
		Limit(1).
		Take(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Patient{}).Count(&count).Error
	return count, err
}
