package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yamadori/todolog/internal/dto"
	apierrors "github.com/yamadori/todolog/internal/errors"
	"github.com/yamadori/todolog/internal/middleware"
	"github.com/yamadori/todolog/internal/models"
	"github.com/yamadori/todolog/internal/repository"
	"github.com/yamadori/todolog/internal/services"
)

// Template names, one per file under web/templates.
const (
	templateLogin   = "login.html"
	templateTodo    = "todo.html"
	templateBuckets = "buckets.html"
)

// renderBucketList re-renders the caller's full bucket listing. Every
// successful mutation responds with this fragment.
func renderBucketList(c *gin.Context, todoService *services.TodoService, username string) {
	buckets, err := todoService.Buckets(username)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.HTML(http.StatusOK, templateBuckets, dto.TodoView{
		Username: username,
		Buckets:  dto.ToBucketViews(buckets),
	})
}

// renderBuckets renders an explicit bucket selection, used by search.
func renderBuckets(c *gin.Context, username string, buckets []*models.Bucket) {
	c.HTML(http.StatusOK, templateBuckets, dto.TodoView{
		Username: username,
		Buckets:  dto.ToBucketViews(buckets),
	})
}

func respondTodoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		// Session references a user that no longer exists; treat as
		// unauthenticated.
		c.Redirect(http.StatusTemporaryRedirect, middleware.LoginPath)
		c.Abort()
	case errors.Is(err, models.ErrBucketNotFound),
		errors.Is(err, models.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnknownSearchKey):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
