package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/llmdesk/llmdesk/internal/handlers"
	"github.com/llmdesk/llmdesk/internal/middleware"
	"github.com/llmdesk/llmdesk/internal/models"
	"github.com/llmdesk/llmdesk/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/ws/tasks", middleware.AuthMiddleware(), handlers.TaskFeed)

	auth := r.Group("/auth")
	{
		auth.POST("/login", handlers.LoginUser)
		auth.POST("/refresh", handlers.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(), handlers.LogoutUser)
		auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
	}

	users := r.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("/me", handlers.GetMe)
	}

	llmTests := r.Group("/llm-tests", middleware.AuthMiddleware())
	{
		llmTests.GET("/models", handlers.ListLlmModels)
		llmTests.GET("/models/:model_id", handlers.GetLlmModel)
		llmTests.POST("", handlers.CreateLlmTest)
	}

	tasks := r.Group("/tasks", middleware.AuthMiddleware())
	{
		tasks.POST("", middleware.RequireRoles(models.RoleUser), handlers.CreateTask)
		tasks.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleUser), handlers.ListTasks)
		tasks.PATCH("/:task_id/status", middleware.RequireRoles(models.RoleAdmin), handlers.UpdateTaskStatus)
	}

	return r
}
