package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// DashboardStats are the headline counts shown on the staff dashboard.
type DashboardStats struct {
	TotalPatients     int64 `json:"totalPatients"`
	TotalDoctors      int64 `json:"totalDoctors"`
	TotalAppointments int64 `json:"totalAppointments"`
	AppointmentsToday int64 `json:"appointmentsToday"`
}

type DashboardService struct {
	patients     PatientStore
	doctors      DoctorStore
	appointments AppointmentStore
	now          func() time.Time
}

func NewDashboardService(patients PatientStore, doctors DoctorStore, appointments AppointmentStore) *DashboardService {
	return &DashboardService{patients: patients, doctors: doctors, appointments: appointments, now: time.Now}
}

// Stats runs the four counts concurrently. The first failure cancels the
// others and fails the whole call.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	start, end := dayBounds(s.now())

	var stats DashboardStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalPatients, err = s.patients.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalDoctors, err = s.doctors.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalAppointments, err = s.appointments.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.AppointmentsToday, err = s.appointments.CountBetween(ctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// dayBounds returns local midnight of t's calendar day and of the next day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
