package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yamadori/todolog/internal/models"
)

// FileUserRepository keeps the user directory in memory and overwrites a
// single JSON document after every successful mutation. The mutex serializes
// all directory access; net/http handles requests concurrently and the
// directory is shared state.
type FileUserRepository struct {
	mu   sync.Mutex
	path string
	dir  models.Directory
}

// NewFileUserRepository loads the directory from path. A missing file yields
// an empty directory; the file is created on the first write.
func NewFileUserRepository(path string) (*FileUserRepository, error) {
	repo := &FileUserRepository{
		path: path,
		dir:  make(models.Directory),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return repo, nil
		}
		return nil, fmt.Errorf("failed to read user directory: %w", err)
	}

	if err := json.Unmarshal(data, &repo.dir); err != nil {
		return nil, fmt.Errorf("failed to parse user directory: %w", err)
	}
	return repo, nil
}

// FindByUsername returns a deep copy of the account for a username.
func (r *FileUserRepository) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.dir[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user.Clone(), nil
}

// Create registers a new account and persists the directory.
func (r *FileUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dir[user.Username]; ok {
		return ErrUserExists
	}
	r.dir[user.Username] = user.Clone()
	return r.save()
}

// UpdateTodoLog applies fn to the user's live log under the lock and persists
// the whole directory when fn succeeds.
func (r *FileUserRepository) UpdateTodoLog(username string, fn func(log *models.TodoLog) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.dir[username]
	if !ok {
		return ErrUserNotFound
	}
	if user.TodoLog == nil {
		user.TodoLog = models.NewTodoLog()
	}
	if err := fn(user.TodoLog); err != nil {
		return err
	}
	return r.save()
}

// save writes the directory wholesale. Caller holds the lock.
func (r *FileUserRepository) save() error {
	data, err := json.MarshalIndent(r.dir, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user directory: %w", err)
	}
	return nil
}
