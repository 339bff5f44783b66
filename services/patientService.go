package services

import (
	"CareDesk/models"
	"context"
)

type PatientService struct {
	patients PatientStore
}

func NewPatientService(patients PatientStore) *PatientService {
	return &PatientService{patients: patients}
}

func (s *PatientService) Create(ctx context.Context, patient *models.Patient) error {
	return s.patients.Create(ctx, patient)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.patients.GetAll(ctx)
}
