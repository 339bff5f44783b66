package services

import (
	"CareDesk/models"
	"CareDesk/utils"
	"context"
	"fmt"
	"sync"
	"time"
)

type memPatients struct {
	mu       sync.Mutex
	rows     []models.Patient
	createFn func(*models.Patient) error
	getErr   error
	countErr error
}

func (m *memPatients) Create(_ context.Context, p *models.Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createFn != nil {
		if err := m.createFn(p); err != nil {
			return err
		}
	}
	p.ID = fmt.Sprintf("patient-%d", len(m.rows)+1)
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memPatients) GetAll(context.Context) ([]models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Patient(nil), m.rows...), nil
}

func (m *memPatients) GetByID(_ context.Context, id string) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.rows {
		if m.rows[i].ID == id {
			p := m.rows[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memPatients) GetByContactNumber(_ context.Context, contact string) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ContactNumber == contact {
			return &models.Patient{ID: m.rows[i].ID}, nil
		}
	}
	return nil, nil
}

func (m *memPatients) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), m.countErr
}

type memDoctors struct {
	rows     []models.Doctor
	countErr error
}

func (m *memDoctors) GetAll(context.Context) ([]models.Doctor, error) { return m.rows, nil }

func (m *memDoctors) Count(context.Context) (int64, error) {
	return int64(len(m.rows)), m.countErr
}

type memAppointments struct {
	mu        sync.Mutex
	rows      []models.Appointment
	createErr error
	findErr   error
}

func (m *memAppointments) Create(_ context.Context, a *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = fmt.Sprintf("appointment-%d", len(m.rows)+1)
	m.rows = append(m.rows, *a)
	return nil
}

func (m *memAppointments) GetAllWithPatients(context.Context) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Appointment(nil), m.rows...), nil
}

func (m *memAppointments) FindForDoctorBetween(_ context.Context, doctor string, from, to time.Time) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []models.Appointment
	for _, a := range m.rows {
		if a.DoctorName == doctor && !a.AppointmentDate.Before(from) && !a.AppointmentDate.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAppointments) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

func (m *memAppointments) CountBetween(_ context.Context, from, to time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.rows {
		if !a.AppointmentDate.Before(from) && a.AppointmentDate.Before(to) {
			n++
		}
	}
	return n, nil
}

type fakeIdentity struct {
	mu       sync.Mutex
	requests []models.AccountRequest
	err      error
}

func (f *fakeIdentity) CreateUser(_ context.Context, req models.AccountRequest) (*models.AuthUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	return &models.AuthUser{ID: fmt.Sprintf("user-%d", len(f.requests)), Email: req.Email, Role: req.Role}, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []utils.EmailMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg utils.EmailMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeLocker struct {
	keys     []string
	released int
	err      error
}

func (f *fakeLocker) Lock(_ context.Context, key string) (func(context.Context) error, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.keys = append(f.keys, key)
	return func(context.Context) error {
		f.released++
		return nil
	}, nil
}
