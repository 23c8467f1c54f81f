package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yamadori/todolog/internal/models"
	"github.com/yamadori/todolog/internal/repository"
)

func setupTodoService(t *testing.T) *TodoService {
	t.Helper()

	repo, err := repository.NewFileUserRepository(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)
	require.NoError(t, repo.Create(&models.User{
		Username: "john",
		Password: "hashed",
		TodoLog:  models.NewTodoLog(),
	}))
	return NewTodoService(repo)
}

func TestTodoService_AppendBucket(t *testing.T) {
	svc := setupTodoService(t)

	bucket, err := svc.AppendBucket("john", "office", "send mail")
	require.NoError(t, err)
	require.Equal(t, "office", bucket.Title)

	buckets, err := svc.Buckets("john")
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	require.Len(t, buckets[0].Tasks, 1)
}

func TestTodoService_MutationsForUnknownUser(t *testing.T) {
	svc := setupTodoService(t)

	_, err := svc.AppendBucket("ghost", "title", "task")
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	err = svc.DeleteBucket("ghost", 1)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTodoService_TaskLifecycle(t *testing.T) {
	svc := setupTodoService(t)

	bucket, err := svc.AppendBucket("john", "office", "seed")
	require.NoError(t, err)

	task, err := svc.AppendTask("john", bucket.BucketID, "new task")
	require.NoError(t, err)

	toggled, err := svc.ToggleTaskStatus("john", bucket.BucketID, task.TaskID)
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusDone, toggled.Status)

	require.NoError(t, svc.EditTask("john", bucket.BucketID, task.TaskID, "renamed"))
	require.NoError(t, svc.DeleteTask("john", bucket.BucketID, task.TaskID))

	buckets, err := svc.Buckets("john")
	require.NoError(t, err)
	require.Len(t, buckets[0].Tasks, 1, "only the seed task remains")
}

func TestTodoService_NotFoundErrors(t *testing.T) {
	svc := setupTodoService(t)

	require.ErrorIs(t, svc.DeleteBucket("john", 42), models.ErrBucketNotFound)
	require.ErrorIs(t, svc.EditBucketTitle("john", 42, "x"), models.ErrBucketNotFound)

	bucket, err := svc.AppendBucket("john", "office", "seed")
	require.NoError(t, err)
	require.ErrorIs(t, svc.DeleteTask("john", bucket.BucketID, 42), models.ErrTaskNotFound)
}

func TestTodoService_Search(t *testing.T) {
	svc := setupTodoService(t)

	_, err := svc.AppendBucket("john", "office", "send mail")
	require.NoError(t, err)
	_, err = svc.AppendBucket("john", "home", "walk dog")
	require.NoError(t, err)

	byTitle, err := svc.Search("john", "office", SearchByTitle)
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	require.Equal(t, "office", byTitle[0].Title)

	byTask, err := svc.Search("john", "dog", SearchByTask)
	require.NoError(t, err)
	require.Len(t, byTask, 1)
	require.Equal(t, "home", byTask[0].Title)

	_, err = svc.Search("john", "x", "color")
	require.ErrorIs(t, err, ErrUnknownSearchKey)
}
