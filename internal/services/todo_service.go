package services

import (
	"errors"
	"fmt"

	"github.com/yamadori/todolog/internal/models"
	"github.com/yamadori/todolog/internal/repository"
)

// Search keys accepted by Search.
const (
	SearchByTitle = "title"
	SearchByTask  = "task"
)

var ErrUnknownSearchKey = errors.New("unknown searchBy value")

// TodoService runs the session-gated mutation pipeline for one user's todo
// log: resolve the log, apply the mutation, persist the directory. Reads
// render from a snapshot and persist nothing.
type TodoService struct {
	users repository.UserRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(users repository.UserRepository) *TodoService {
	return &TodoService{
		users: users,
	}
}

// Buckets returns the user's full bucket listing in id order.
func (s *TodoService) Buckets(username string) ([]*models.Bucket, error) {
	log, err := s.snapshot(username)
	if err != nil {
		return nil, err
	}
	return log.AllBuckets(), nil
}

// AppendBucket creates a bucket with one seed task and persists.
func (s *TodoService) AppendBucket(username, title, seedText string) (*models.Bucket, error) {
	var bucket *models.Bucket
	err := s.users.UpdateTodoLog(username, func(log *models.TodoLog) error {
		bucket = log.Append(title, seedText)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bucket, nil
}

// DeleteBucket removes a bucket and its tasks and persists.
func (s *TodoService) DeleteBucket(username string, bucketID uint64) error {
	return s.users.UpdateTodoLog(username, func(log *models.TodoLog) error {
		return log.DeleteBucket(bucketID)
	})
}

// EditBucketTitle replaces a bucket's title and persists.
func (s *TodoService) EditBucketTitle(username string, bucketID uint64, title string) error {
	return s.users.UpdateTodoLog(username, func(log *models.TodoLog) error {
		return log.EditBucketTitle(bucketID, title)
	})
}

// AppendTask adds a pending task to a bucket and persists.
func (s *TodoService) AppendTask(username string, bucketID uint64, text string) (*models.Task, error) {
	var task *models.Task
	err := s.users.UpdateTodoLog(username, func(log *models.TodoLog) error {
		created, err := log.AppendTask(bucketID, text)
		if err != nil {
			return err
		}
		task = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task from its bucket and persists.
func (s *TodoService) DeleteTask(username string, bucketID, taskID uint64) error {
	return s.users.UpdateTodoLog(username, func(log *models.TodoLog) error {
		return log.DeleteTask(bucketID, taskID)
	})
}

// EditTask replaces a task's text and persists.
func (s *TodoService) EditTask(username string, bucketID, taskID uint64, text string) error {
	return s.users.UpdateTodoLog(username, func(log *models.TodoLog) error {
		return log.EditTask(bucketID, taskID, text)
	})
}

// ToggleTaskStatus flips a task between pending and done and persists.
func (s *TodoService) ToggleTaskStatus(username string, bucketID, taskID uint64) (*models.Task, error) {
	var task *models.Task
	err := s.users.UpdateTodoLog(username, func(log *models.TodoLog) error {
		toggled, err := log.ChangeTaskStatus(bucketID, taskID)
		if err != nil {
			return err
		}
		task = toggled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Search filters the user's buckets by title or task text. It performs no
// mutation, so nothing is persisted.
func (s *TodoService) Search(username, text, searchBy string) ([]*models.Bucket, error) {
	log, err := s.snapshot(username)
	if err != nil {
		return nil, err
	}

	switch searchBy {
	case SearchByTitle:
		return log.SearchTitle(text), nil
	case SearchByTask:
		return log.SearchTask(text), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSearchKey, searchBy)
	}
}

func (s *TodoService) snapshot(username string) (*models.TodoLog, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user.TodoLog == nil {
		return models.NewTodoLog(), nil
	}
	return user.TodoLog, nil
}
