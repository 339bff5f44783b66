package services

import (
	"CareDesk/models"
	"context"
)

type DoctorService struct {
	doctors DoctorStore
}

func NewDoctorService(doctors DoctorStore) *DoctorService {
	return &DoctorService{doctors: doctors}
}

func (s *DoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors.GetAll(ctx)
}
