package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RolePatient is the role stamped on accounts provisioned by public booking.
const RolePatient = "patient"

// UserMetadata is the profile data stored next to an auth account.
type UserMetadata struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (m UserMetadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *UserMetadata) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = UserMetadata{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for user metadata")
	}
}

// AuthUser is a login credential held in the administrative identity store.
type AuthUser struct {
	ID               string       `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	Email            string       `gorm:"size:255;not null;uniqueIndex;column:email" json:"email"`
	PasswordHash     string       `gorm:"size:255;not null;column:password_hash" json:"-"`
	Role             string       `gorm:"size:50;not null;column:role" json:"role"`
	Metadata         UserMetadata `gorm:"type:text;column:user_metadata" json:"user_metadata"`
	EmailConfirmedAt *time.Time   `gorm:"column:email_confirmed_at" json:"email_confirmed_at"`
	CreatedAt        time.Time    `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (AuthUser) TableName() string {
	return "auth_users"
}

func (u *AuthUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// AccountRequest describes a credential to provision through an identity admin.
type AccountRequest struct {
	Email    string
	Password string
	Name     string
	Role     string
}
