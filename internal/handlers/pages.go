package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yamadori/todolog/internal/dto"
	"github.com/yamadori/todolog/internal/services"
)

// PageHandler serves the server-rendered HTML pages.
type PageHandler struct {
	todoService *services.TodoService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(todoService *services.TodoService) *PageHandler {
	return &PageHandler{
		todoService: todoService,
	}
}

// LoginPage renders the login/signup page.
func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, templateLogin, nil)
}

// TodoPage renders the caller's full to-do page.
func (h *PageHandler) TodoPage(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	buckets, err := h.todoService.Buckets(username)
	if err != nil {
		respondTodoError(c, err)
		return
	}

	c.HTML(http.StatusOK, templateTodo, dto.TodoView{
		Username: username,
		Buckets:  dto.ToBucketViews(buckets),
	})
}
