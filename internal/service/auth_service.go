package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rental-service/internal/auth"
	"rental-service/internal/model"
	"rental-service/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepo *repository.UserRepository
	issuer   *auth.Issuer
	log      zerolog.Logger
}

func NewAuthService(userRepo *repository.UserRepository, issuer *auth.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, issuer: issuer, log: log}
}

type RegisterInput struct {
	Username string
	Password string
	Role     string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || len(input.Password) < 6 {
		return nil, ErrInvalidInput
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if role != string(model.UserRoleAdmin) {
		role = string(model.UserRoleAgent)
	}
	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, &PersistError{Op: "persist user", Payload: user.Username, Err: err}
	}
	s.log.Info().Str("username", username).Msg("user registered")
	return user, nil
}

// Login verifies credentials and returns a signed access token together with
// the account. A wrong username and a wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return mapNotFound(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}
	if len(next) < 6 {
		return ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return s.userRepo.Save(ctx, user)
}

func (s *AuthService) UpdateUsername(ctx context.Context, userID uuid.UUID, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidInput
	}
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil && existing.ID != userID {
		return nil, ErrConflict
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	user.Username = username
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, &PersistError{Op: "persist user", Payload: user.Username, Err: err}
	}
	return user, nil
}
