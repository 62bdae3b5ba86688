package services

import (
	"context"
	"errors"

	"storefront-service/apperrors"
	"storefront-service/models"
	"storefront-service/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenIssuer is the part of the token service the auth flow needs.
type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Database("Failed to create account", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Database("Failed to hash password", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.Database("Failed to create account", err)
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token. Unknown email and
// wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.Unauthorized("invalid email or password")
		}
		return "", apperrors.Database("Failed to authenticate", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Unauthorized("invalid email or password")
	}

	token, err := s.tokens.GenerateToken(user.ID.String())
	if err != nil {
		return "", apperrors.Database("Failed to generate token", err)
	}
	return token, nil
}
