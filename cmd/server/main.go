package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/yamadori/todolog/internal/config"
	"github.com/yamadori/todolog/internal/constants"
	"github.com/yamadori/todolog/internal/handlers"
	"github.com/yamadori/todolog/internal/middleware"
	"github.com/yamadori/todolog/internal/repository"
	"github.com/yamadori/todolog/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Load the user directory from disk
	userRepo, err := repository.NewFileUserRepository(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to load user directory: %v", err)
	}

	// Initialize services and handlers
	authService := services.NewAuthService(userRepo)
	todoService := services.NewTodoService(userRepo)

	authHandler := handlers.NewAuthHandler(authService, todoService)
	todoHandler := handlers.NewTodoHandler(todoService)
	pageHandler := handlers.NewPageHandler(todoService)

	// Initialize Gin router
	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)

	// Setup session middleware with an in-memory store. The cookie carries
	// only the opaque session token; session data stays server-side.
	store := memstore.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Public routes
	r.GET("/login", pageHandler.LoginPage)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/checkUserAvailability", authHandler.CheckUserAvailability)

	// Session-gated routes
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

	// Start server
	log.Printf("Server starting on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
