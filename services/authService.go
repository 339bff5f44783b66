package services

import (
	"CareDesk/models"
	"CareDesk/utils"
	"context"
	"fmt"
)

// LoginResult carries the tokens issued on a successful login.
type LoginResult struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         models.AuthUser `json:"user"`
}

type AuthService struct {
	users  AuthUserStore
	tokens *utils.TokenMaker
}

func NewAuthService(users AuthUserStore, tokens *utils.TokenMaker) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login checks an account's password and issues an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := s.tokens.GenerateTokens(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &LoginResult{AccessToken: access, RefreshToken: refresh, User: *user}, nil
}

func (s *AuthService) ValidateToken(token string, roles ...string) (*utils.TokenClaims, error) {
	return s.tokens.ValidateToken(token, roles...)
}
