package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yamadori/todolog/internal/constants"
	apierrors "github.com/yamadori/todolog/internal/errors"
	"github.com/yamadori/todolog/internal/middleware"
	"github.com/yamadori/todolog/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	todoService *services.TodoService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, todoService *services.TodoService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		todoService: todoService,
	}
}

// Signup registers a new user and logs them in right away.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Username string `form:"username" json:"username" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Signup(services.SignupInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if !startSession(c, user.Username) {
		return
	}
	renderBucketList(c, h.todoService, user.Username)
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `form:"username" json:"username" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	if !startSession(c, user.Username) {
		return
	}
	renderBucketList(c, h.todoService, user.Username)
}

// Logout destroys the session and clears the cookie. A cookie that maps to no
// live session is a 400, not a redirect.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(constants.SessionKeyUsername) == nil {
		apierrors.BadRequest(c, "No active session")
		return
	}

	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, middleware.LoginPath)
}

// CheckUserAvailability reports whether a username is still free.
func (h *AuthHandler) CheckUserAvailability(c *gin.Context) {
	type AvailabilityRequest struct {
		Username string `form:"username" json:"username" binding:"required"`
	}

	var req AvailabilityRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.CheckAvailability(req.Username); err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "username available",
	})
}

func startSession(c *gin.Context, username string) bool {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyUsername, username)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return false
	}
	return true
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.UnprocessableEntity(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
