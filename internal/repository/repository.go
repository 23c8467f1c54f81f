package repository

import (
	"errors"

	"github.com/yamadori/todolog/internal/models"
)

var (
	// ErrUserNotFound is returned when a username has no account.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when creating an account whose username is taken.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository defines the interface for user directory access.
type UserRepository interface {
	// FindByUsername returns the account for a username. The returned user
	// is a copy; mutating it does not touch stored state.
	FindByUsername(username string) (*models.User, error)

	// Create registers a new account and persists the directory.
	Create(user *models.User) error

	// UpdateTodoLog applies fn to the user's live todo log and persists the
	// directory when fn succeeds. An error from fn skips the persist.
	UpdateTodoLog(username string, fn func(log *models.TodoLog) error) error
}
