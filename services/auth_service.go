package services

import (
	"context"
	"errors"

	"nutritrack/models"
	"nutritrack/store"
	"nutritrack/utils"
)

type AuthService struct {
	store     *store.Store
	jwtSecret []byte
}

func NewAuthService(st *store.Store, jwtSecret string) *AuthService {
	return &AuthService{store: st, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return s.store.CreateUser(ctx, username, email, hash)
}

// Authenticate checks credentials and returns a signed token. A wrong
// password and an unknown email report the same error on purpose.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(s.jwtSecret, user.ID, user.Email)
}
