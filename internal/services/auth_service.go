package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yamadori/todolog/internal/models"
	"github.com/yamadori/todolog/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken        = errors.New("userAlreadyExists")
	ErrInvalidCredentials   = errors.New("invalidUserNameOrPassword")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	users repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{
		users: users,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Username string
	Password string
}

// Signup creates a new user with an empty todo log.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
		TodoLog:  models.NewTodoLog(),
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.users.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// CheckAvailability reports whether a username is still free.
func (s *AuthService) CheckAvailability(username string) error {
	_, err := s.users.FindByUsername(username)
	if err == nil {
		return ErrUsernameTaken
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	return fmt.Errorf("failed to check username: %w", err)
}
