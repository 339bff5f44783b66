package repositories

import (
	"CareDesk/database"
	"CareDesk/models"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.MigrateIdentity(db))
	return db
}

func seedPatient(t *testing.T, db *gorm.DB) string {
	t.Helper()
	patient := &models.Patient{Name: "Ann", ContactNumber: "0711"}
	require.NoError(t, NewPatientRepository(db).Create(context.Background(), patient))
	return patient.ID
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 1, hour, minute, 0, 0, time.UTC)
}

func TestPatientRepository_CreateAndList(t *testing.T) {
	repo := NewPatientRepository(newTestDB(t))
	ctx := context.Background()

	older := &models.Patient{Name: "Ann", Age: 40, ContactNumber: "0711", CreatedAt: at(8, 0)}
	newer := &models.Patient{Name: "Ben", Age: 22, ContactNumber: "0722", CreatedAt: at(9, 0)}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	assert.NotEmpty(t, older.ID)

	patients, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Ben", patients[0].Name)
	assert.Equal(t, "Ann", patients[1].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestPatientRepository_Lookups(t *testing.T) {
	repo := NewPatientRepository(newTestDB(t))
	ctx := context.Background()

	patient := &models.Patient{Name: "Ann", Email: "ann@example.com", ContactNumber: "0711"}
	require.NoError(t, repo.Create(ctx, patient))

	found, err := repo.GetByContactNumber(ctx, "0711")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, patient.ID, found.ID)

	missing, err := repo.GetByContactNumber(ctx, "0711 ")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byID, err := repo.GetByID(ctx, patient.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "ann@example.com", byID.Email)

	none, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestAppointmentRepository_FindForDoctorBetween(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()
	patientID := seedPatient(t, db)

	for _, a := range []models.Appointment{
		{PatientID: patientID, DoctorName: "Dr Smith (GP)", AppointmentDate: at(9, 30)},
		{PatientID: patientID, DoctorName: "Dr Smith (GP)", AppointmentDate: at(10, 30)},
		{PatientID: patientID, DoctorName: "Dr Smith (GP)", AppointmentDate: at(10, 31)},
		{PatientID: patientID, DoctorName: "Dr Jones (GP)", AppointmentDate: at(10, 0)},
	} {
		require.NoError(t, repo.Create(ctx, &a))
	}

	hits, err := repo.FindForDoctorBetween(ctx, "Dr Smith (GP)", at(9, 30), at(10, 30))
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = repo.FindForDoctorBetween(ctx, "Dr Smith  (GP)", at(9, 0), at(11, 0))
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestAppointmentRepository_ListWithPatients(t *testing.T) {
	db := newTestDB(t)
	patients := NewPatientRepository(db)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	patient := &models.Patient{Name: "Ann", ContactNumber: "0711"}
	require.NoError(t, patients.Create(ctx, patient))

	require.NoError(t, repo.Create(ctx, &models.Appointment{PatientID: patient.ID, DoctorName: "Dr Smith (GP)", AppointmentDate: at(11, 0)}))
	require.NoError(t, repo.Create(ctx, &models.Appointment{PatientID: patient.ID, DoctorName: "Dr Smith (GP)", AppointmentDate: at(9, 0)}))

	appointments, err := repo.GetAllWithPatients(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.True(t, appointments[0].AppointmentDate.Equal(at(9, 0)))
	require.NotNil(t, appointments[0].Patient)
	assert.Equal(t, "Ann", appointments[0].Patient.Name)
	assert.Equal(t, "0711", appointments[0].Patient.ContactNumber)
}

func TestAppointmentRepository_CountBetween(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()
	patientID := seedPatient(t, db)

	for _, when := range []time.Time{at(0, 0), at(23, 59), at(0, 0).AddDate(0, 0, 1)} {
		require.NoError(t, repo.Create(ctx, &models.Appointment{PatientID: patientID, DoctorName: "Dr Smith (GP)", AppointmentDate: when}))
	}

	today, err := repo.CountBetween(ctx, at(0, 0), at(0, 0).AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.EqualValues(t, 2, today)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestDoctorRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewDoctorRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, db.Create(&models.Doctor{ID: "d1", Name: "Dr Smith", Specialty: "GP"}).Error)

	doctors, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "GP", doctors[0].Specialty)
}

func TestAuthRepository_CreateUser(t *testing.T) {
	repo := NewAuthRepository(newTestDB(t))
	repo.now = func() time.Time { return at(12, 0) }
	ctx := context.Background()

	req := models.AccountRequest{Email: "jane@example.com", Password: "secret1", Name: "Jane", Role: models.RolePatient}
	user, err := repo.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	require.NotNil(t, user.EmailConfirmedAt)
	assert.True(t, user.EmailConfirmedAt.Equal(at(12, 0)))

	stored, err := repo.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.UserMetadata{Name: "Jane", Role: models.RolePatient}, stored.Metadata)

	_, err = repo.CreateUser(ctx, req)
	assert.EqualError(t, err, "a user with this email address has already been registered")

	missing, err := repo.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
