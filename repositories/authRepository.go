package repositories

import (
	"CareDesk/models"
	"CareDesk/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AuthRepository is the database-backed identity admin. It runs on the
// administrative connection, which is the only one allowed to write auth_users.
type AuthRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db, now: time.Now}
}

// CreateUser provisions a pre-confirmed account with a bcrypt password hash.
func (r *AuthRepository) CreateUser(ctx context.Context, req models.AccountRequest) (*models.AuthUser, error) {
	exists, err := r.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("a user with this email address has already been registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	confirmedAt := r.now().UTC()
	user := &models.AuthUser{
		Email:            req.Email,
		PasswordHash:     hash,
		Role:             req.Role,
		Metadata:         models.UserMetadata{Name: req.Name, Role: req.Role},
		EmailConfirmedAt: &confirmedAt,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *AuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AuthUser{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*models.AuthUser, error) {
	var user models.AuthUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
