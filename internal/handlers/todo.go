package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yamadori/todolog/internal/errors"
	"github.com/yamadori/todolog/internal/middleware"
	"github.com/yamadori/todolog/internal/services"
)

// TodoHandler serves the bucket and task mutation endpoints. Every mutation
// follows the same pipeline: session gate (middleware), field validation,
// todo log mutation, persistence, re-render of the full bucket listing.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// SaveBucket creates a bucket with one seed task.
func (h *TodoHandler) SaveBucket(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	type SaveBucketRequest struct {
		Title string `form:"title" json:"title" binding:"required"`
		Task  string `form:"task" json:"task"`
	}

	var req SaveBucketRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.todoService.AppendBucket(username, req.Title, req.Task); err != nil {
		respondTodoError(c, err)
		return
	}
	renderBucketList(c, h.todoService, username)
}

// DeleteBucket removes a bucket and all its tasks.
func (h *TodoHandler) DeleteBucket(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	type DeleteBucketRequest struct {
		BucketID uint64 `form:"bucketId" json:"bucketId" binding:"required"`
	}

	var req DeleteBucketRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.DeleteBucket(username, req.BucketID); err != nil {
		respondTodoError(c, err)
		return
	}
	renderBucketList(c, h.todoService, username)
}

// EditTitle replaces a bucket's title.
func (h *TodoHandler) EditTitle(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	type EditTitleRequest struct {
		BucketID uint64 `form:"bucketId" json:"bucketId" binding:"required"`
		Title    string `form:"title" json:"title" binding:"required"`
	}

	var req EditTitleRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.EditBucketTitle(username, req.BucketID, req.Title); err != nil {
		respondTodoError(c, err)
		return
	}
	renderBucketList(c, h.todoService, username)
}

// SaveNewTask appends a pending task to a bucket.
func (h *TodoHandler) SaveNewTask(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	type SaveNewTaskRequest struct {
		BucketID uint64 `form:"bucketId" json:"bucketId" binding:"required"`
		Task     string `form:"task" json:"task" binding:"required"`
	}

	var req SaveNewTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.todoService.AppendTask(username, req.BucketID, req.Task); err != nil {
		respondTodoError(c, err)
		return
	}
	renderBucketList(c, h.todoService, username)
}

// DeleteTask removes a task from its bucket.
func (h *TodoHandler) DeleteTask(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	type DeleteTaskRequest struct {
		BucketID uint64 `form:"bucketId" json:"bucketId" binding:"required"`
		TaskID   uint64 `form:"taskId" json:"taskId" binding:"required"`
	}

	var req DeleteTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.DeleteTask(username, req.BucketID, req.TaskID); err != nil {
		respondTodoError(c, err)
		return
	}
	renderBucketList(c, h.todoService, username)
}

// EditTask replaces a task's text.
func (h *TodoHandler) EditTask(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	type EditTaskRequest struct {
		BucketID uint64 `form:"bucketId" json:"bucketId" binding:"required"`
		TaskID   uint64 `form:"taskId" json:"taskId" binding:"required"`
		Text     string `form:"text" json:"text" binding:"required"`
	}

	var req EditTaskRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.todoService.EditTask(username, req.BucketID, req.TaskID, req.Text); err != nil {
		respondTodoError(c, err)
		return
	}
	renderBucketList(c, h.todoService, username)
}

// SetStatus toggles a task between pending and done.
func (h *TodoHandler) SetStatus(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	type SetStatusRequest struct {
		BucketID uint64 `form:"bucketId" json:"bucketId" binding:"required"`
		TaskID   uint64 `form:"taskId" json:"taskId" binding:"required"`
	}

	var req SetStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.todoService.ToggleTaskStatus(username, req.BucketID, req.TaskID); err != nil {
		respondTodoError(c, err)
		return
	}
	renderBucketList(c, h.todoService, username)
}

// Search renders the buckets matching a title or task text filter. No
// mutation, so nothing is persisted.
func (h *TodoHandler) Search(c *gin.Context) {
	username, ok := requireUsername(c)
	if !ok {
		return
	}

	type SearchRequest struct {
		Text     string `form:"text" json:"text" binding:"required"`
		SearchBy string `form:"searchBy" json:"searchBy" binding:"required"`
	}

	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	buckets, err := h.todoService.Search(username, req.Text, req.SearchBy)
	if err != nil {
		respondTodoError(c, err)
		return
	}
	renderBuckets(c, username, buckets)
}

func requireUsername(c *gin.Context) (string, bool) {
	username, exists := middleware.GetUsername(c)
	if !exists {
		c.Redirect(http.StatusTemporaryRedirect, middleware.LoginPath)
		c.Abort()
		return "", false
	}
	return username, true
}
