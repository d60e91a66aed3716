package api

import (
	"github.com/gin-gonic/gin"

	authDelivery "github.com/SafouaneCh/TaskMate-main/internal/auth/delivery"
	authRepo "github.com/SafouaneCh/TaskMate-main/internal/auth/repository"
	authUsecasePkg "github.com/SafouaneCh/TaskMate-main/internal/auth/usecase"
	taskDelivery "github.com/SafouaneCh/TaskMate-main/internal/task/delivery"
	taskUsecasePkg "github.com/SafouaneCh/TaskMate-main/internal/task/usecase"
	"github.com/SafouaneCh/TaskMate-main/pkg/config"
)

type Handler struct {
	authUsecase authUsecasePkg.AuthUsecase
	authHandler *authDelivery.AuthHandler
	taskHandler *taskDelivery.TaskHandler
	config      *config.Config
}

func NewHandler(
	authUc authUsecasePkg.AuthUsecase,
	taskUc taskUsecasePkg.TaskUsecase,
	deviceTokenRepo authRepo.DeviceTokenRepository,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase: authUc,
		authHandler: authDelivery.NewAuthHandler(authUc, deviceTokenRepo),
		taskHandler: taskDelivery.NewTaskHandler(taskUc),
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.taskHandler)

	return r.Run(addr)
}
