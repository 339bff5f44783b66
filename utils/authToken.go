package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

const (
	// Set expiration times for access and refresh tokens.
	AccessTokenExpiry  = 24 * time.Hour
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

var (
	ErrTokenExpired            = errors.New("token expired")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// TokenClaims struct represents the data in the token (UserID, Role, Expiry).
type TokenClaims struct {
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Expiry time.Time `json:"expiry"`
}

// TokenMaker issues and validates PASETO v2 local tokens with a 32-byte key.
type TokenMaker struct {
	key []byte
	now func() time.Time
}

func NewTokenMaker(symmetricKey string) (*TokenMaker, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be 32 bytes long, got %d", len(symmetricKey))
	}
	return &TokenMaker{key: []byte(symmetricKey), now: time.Now}, nil
}

// GenerateTokens generates both the access token and refresh token for the given user.
func (m *TokenMaker) GenerateTokens(userID, email, role string) (accessToken, refreshToken string, err error) {
	accessToken, err = m.generate(userID, email, role, AccessTokenExpiry)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = m.generate(userID, email, role, RefreshTokenExpiry)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (m *TokenMaker) generate(userID, email, role string, expiry time.Duration) (string, error) {
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Expiry: m.now().Add(expiry),
	}

	token, err := paseto.NewV2().Encrypt(m.key, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken decrypts the token and checks its expiry and, when given, the role.
func (m *TokenMaker) ValidateToken(tokenString string, requiredRoles ...string) (*TokenClaims, error) {
	var claims TokenClaims
	if err := paseto.NewV2().Decrypt(tokenString, m.key, &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	if m.now().After(claims.Expiry) {
		return nil, ErrTokenExpired
	}

	if len(requiredRoles) == 0 {
		return &claims, nil
	}
	for _, role := range requiredRoles {
		if claims.Role == role {
			return &claims, nil
		}
	}
	return nil, ErrInsufficientPermissions
}
