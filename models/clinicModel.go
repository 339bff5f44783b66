package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientStatusOutpatient is the status given to patients registered through public booking.
const PatientStatusOutpatient = "Outpatient"

// Patient model
type Patient struct {
	ID            string    `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Age           int       `gorm:"column:age" json:"age"`
	Condition     string    `gorm:"column:condition" json:"condition"`
	Status        string    `gorm:"column:status" json:"status"`
	ContactNumber string    `gorm:"column:contact_number;index" json:"contact_number"`
	Email         string    `gorm:"column:email" json:"email"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PatientContact is the slice of a patient that is embedded in appointment listings.
// Its column tags must agree with Patient, since migrations see both.
type PatientContact struct {
	ID            string `gorm:"primaryKey;type:uuid;column:id" json:"-"`
	Name          string `gorm:"column:name;not null" json:"name"`
	ContactNumber string `gorm:"column:contact_number;index" json:"contact_number"`
}

func (PatientContact) TableName() string {
	return "patients"
}

// Doctor model. Doctors are maintained outside this service and only read here.
type Doctor struct {
	ID           string    `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Specialty    string    `gorm:"column:specialty" json:"specialty"`
	Email        string    `gorm:"column:email" json:"email"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	Availability string    `gorm:"column:availability" json:"availability"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Appointment model
type Appointment struct {
	ID              string          `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	PatientID       string          `gorm:"column:patient_id;type:uuid;not null;index" json:"patient_id"`
	DoctorName      string          `gorm:"column:doctor_name;not null;index" json:"doctor_name"`
	AppointmentDate time.Time       `gorm:"column:appointment_date;not null;index" json:"appointment_date"`
	Reason          string          `gorm:"column:reason" json:"reason"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient         *PatientContact `gorm:"foreignKey:PatientID;references:ID" json:"patients"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// DoctorDisplayName builds the "Name (Specialty)" string that appointments
// store and that clash detection matches on. It does not normalise
// whitespace or case, so "Dr Smith (GP)" and "Dr Smith  (GP)" never collide.
func DoctorDisplayName(name, specialty string) string {
	return fmt.Sprintf("%s (%s)", name, specialty)
}
