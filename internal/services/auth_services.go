package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
)

type AuthService struct {
	Admins *repository.AdminRepository
}

func NewAuthService(a *repository.AdminRepository) *AuthService {
	return &AuthService{Admins: a}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// RegisterByAdmin creates a dashboard account. Only an authenticated admin
// reaches this; there is no public signup.
func (s *AuthService) RegisterByAdmin(ctx context.Context, email, password string) (int64, error) {
	if err := s.validateEmail(email); err != nil {
		return 0, err
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	exists, err := s.Admins.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Admins.Create(ctx, email, string(hash), "admin")
}

// Login authenticates with email + password and returns the admin without
// the password hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Admin, error) {
	a, err := s.Admins.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether email exists
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	a.PasswordHash = ""
	return a, nil
}
