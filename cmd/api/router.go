package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authDelivery "github.com/SafouaneCh/TaskMate-main/internal/auth/delivery"
	authUsecase "github.com/SafouaneCh/TaskMate-main/internal/auth/usecase"
	taskDelivery "github.com/SafouaneCh/TaskMate-main/internal/task/delivery"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *authDelivery.AuthHandler, taskHandler *taskDelivery.TaskHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"service":   "TaskMate Backend",
				"version":   "1.0.0",
			})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/tokenIsValid", authHandler.TokenIsValid)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Device-token routes for push reminders (protected)
		devices := api.Group("/devices")
		devices.Use(authDelivery.AuthMiddleware(authUc))
		{
			devices.POST("", authHandler.RegisterDevice)
			devices.DELETE("/:token", authHandler.UnregisterDevice)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(authUc))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/parse", taskHandler.ParseTask)
			tasks.GET("/stats", taskHandler.GetTaskStats)
			tasks.GET("/overdue", taskHandler.GetOverdueTasks)
			tasks.POST("/overdue/sweep", taskHandler.SweepOverdueTasks)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
		}
	}
}
