package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yamadori/todolog/internal/constants"
	"github.com/yamadori/todolog/internal/middleware"
	"github.com/yamadori/todolog/internal/repository"
	"github.com/yamadori/todolog/internal/services"
)

type testEnv struct {
	repo        *repository.FileUserRepository
	authService *services.AuthService
	todoService *services.TodoService
	router      *gin.Engine
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	repo, err := repository.NewFileUserRepository(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)

	authService := services.NewAuthService(repo)
	todoService := services.NewTodoService(repo)

	authHandler := NewAuthHandler(authService, todoService)
	todoHandler := NewTodoHandler(todoService)
	pageHandler := NewPageHandler(todoService)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := memstore.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/login", pageHandler.LoginPage)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/checkUserAvailability", authHandler.CheckUserAvailability)

	r.GET("/", middleware.RequireAuth(), pageHandler.TodoPage)
	user := r.Group("/user")
	user.Use(middleware.RequireAuth())
	{
		user.GET("/todo", pageHandler.TodoPage)
		user.POST("/saveTodo", todoHandler.SaveBucket)
		user.POST("/deleteBucket", todoHandler.DeleteBucket)
		user.POST("/editTitle", todoHandler.EditTitle)
		user.POST("/saveNewTask", todoHandler.SaveNewTask)
		user.POST("/deleteTask", todoHandler.DeleteTask)
		user.POST("/editTask", todoHandler.EditTask)
		user.POST("/setStatus", todoHandler.SetStatus)
		user.POST("/search", todoHandler.Search)
	}

	return testEnv{
		repo:        repo,
		authService: authService,
		todoService: todoService,
		router:      r,
	}
}

func postForm(env testEnv, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func getPage(env testEnv, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signupAs registers a user through the signup endpoint and returns the
// session cookies from the auto-login.
func signupAs(t *testing.T, env testEnv, username, password string) []*http.Cookie {
	t.Helper()

	w := postForm(env, "/signup", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}
