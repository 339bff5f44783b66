package repositories

import (
	"CareDesk/models"
	"context"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	if err := r.db.WithContext(ctx).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Doctor{}).Count(&count).Error
	return count, err
}
