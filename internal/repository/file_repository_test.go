package repository

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yamadori/todolog/internal/models"
)

func newTestRepo(t *testing.T) (*FileUserRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.json")
	repo, err := NewFileUserRepository(path)
	require.NoError(t, err)
	return repo, path
}

func newTestUser(username string) *models.User {
	return &models.User{
		Username: username,
		Password: "hashed",
		TodoLog:  models.NewTodoLog(),
	}
}

func TestFileUserRepository_MissingFileYieldsEmptyDirectory(t *testing.T) {
	repo, path := newTestRepo(t)

	_, err := repo.FindByUsername("anyone")
	require.ErrorIs(t, err, ErrUserNotFound)

	// Nothing written until the first mutation.
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestFileUserRepository_CreatePersistsDocument(t *testing.T) {
	repo, path := newTestRepo(t)

	require.NoError(t, repo.Create(newTestUser("john")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var dir models.Directory
	require.NoError(t, json.Unmarshal(data, &dir))
	require.Contains(t, dir, "john")
	require.Equal(t, "john", dir["john"].Username)
}

func TestFileUserRepository_CreateDuplicate(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Create(newTestUser("john")))
	require.ErrorIs(t, repo.Create(newTestUser("john")), ErrUserExists)
}

func TestFileUserRepository_FindReturnsCopy(t *testing.T) {
	repo, _ := newTestRepo(t)
	require.NoError(t, repo.Create(newTestUser("john")))

	user, err := repo.FindByUsername("john")
	require.NoError(t, err)
	user.TodoLog.Append("scratch", "task")

	again, err := repo.FindByUsername("john")
	require.NoError(t, err)
	require.Empty(t, again.TodoLog.Buckets, "mutating a returned user must not touch stored state")
}

func TestFileUserRepository_UpdateTodoLogPersists(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Create(newTestUser("john")))

	err := repo.UpdateTodoLog("john", func(log *models.TodoLog) error {
		log.Append("office", "send mail")
		return nil
	})
	require.NoError(t, err)

	// A fresh repository loading the same file sees the mutation.
	reloaded, err := NewFileUserRepository(path)
	require.NoError(t, err)
	user, err := reloaded.FindByUsername("john")
	require.NoError(t, err)
	require.Len(t, user.TodoLog.Buckets, 1)
	require.Equal(t, "office", user.TodoLog.AllBuckets()[0].Title)
	require.Equal(t, uint64(1), user.TodoLog.LastBucketID)
}

func TestFileUserRepository_UpdateTodoLogErrorSkipsPersist(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Create(newTestUser("john")))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	failure := errors.New("mutation failed")
	err = repo.UpdateTodoLog("john", func(log *models.TodoLog) error {
		return failure
	})
	require.ErrorIs(t, err, failure)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after, "failed mutation must not rewrite the document")
}

func TestFileUserRepository_UpdateTodoLogUnknownUser(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.UpdateTodoLog("ghost", func(log *models.TodoLog) error {
		t.Fatal("fn must not run for an unknown user")
		return nil
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFileUserRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileUserRepository(path)
	require.Error(t, err)
}
