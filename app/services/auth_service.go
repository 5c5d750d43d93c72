package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/repositories"
)

// Session flags set on successful login. Route guards check these.
const (
	AdminSessionFlag = "admin_logged_in"
	UserSessionFlag  = "user_logged_in"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrEmailTaken         = errors.New("auth: email already registered")
)

// AuthService verifies credentials against the stored bcrypt hashes and
// registers new storefront users.
type AuthService struct {
	users  *repositories.UserRepository
	admins *repositories.AdminRepository
}

func NewAuthService(users *repositories.UserRepository, admins *repositories.AdminRepository) *AuthService {
	return &AuthService{users: users, admins: admins}
}

// AdminLogin checks an admin username/password pair. A missing account and a
// wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) error {
	admin, err := s.admins.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UserLogin checks a storefront email/password pair.
func (s *AuthService) UserLogin(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Signup registers a new user. The email column is unique, so a duplicate
// surfaces as ErrEmailTaken rather than a store error.
func (s *AuthService) Signup(ctx context.Context, email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}
