package main

import (
	"log"

	api "github.com/SafouaneCh/TaskMate-main/cmd/api"
	authdomain "github.com/SafouaneCh/TaskMate-main/internal/auth/domain"
	authRepo "github.com/SafouaneCh/TaskMate-main/internal/auth/repository"
	authUsecase "github.com/SafouaneCh/TaskMate-main/internal/auth/usecase"
	taskdomain "github.com/SafouaneCh/TaskMate-main/internal/task/domain"
	taskRepo "github.com/SafouaneCh/TaskMate-main/internal/task/repository"
	"github.com/SafouaneCh/TaskMate-main/internal/task/scheduler"
	taskUsecase "github.com/SafouaneCh/TaskMate-main/internal/task/usecase"
	"github.com/SafouaneCh/TaskMate-main/pkg/ai"
	"github.com/SafouaneCh/TaskMate-main/pkg/config"
	"github.com/SafouaneCh/TaskMate-main/pkg/database"
	"github.com/SafouaneCh/TaskMate-main/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &authdomain.DeviceToken{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	deviceTokenRepository := authRepo.NewDeviceTokenRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Natural-language parser: LLM path enabled only when a credential is set
	parser := ai.NewService(ai.Config{
		APIURL:      cfg.AIAPIURL,
		APIKey:      cfg.AIAPIKey,
		Model:       cfg.AIModel,
		Timeout:     cfg.AITimeout,
		Temperature: cfg.AITemperature,
	})
	taskUsecaseInstance.SetParser(parser)
	if cfg.AIAPIKey != "" {
		log.Printf("[AI] Parser initialized with model %s", cfg.AIModel)
	} else {
		log.Println("[AI] No API credential configured, rule-based parsing only")
	}

	// Initialize FCM client (optional, reminders work without it)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
			fcmClient = nil
		}
	} else {
		log.Println("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Reminder scheduler (push reminders + nightly cleanup)
	reminderScheduler := scheduler.NewReminderScheduler(taskRepository, deviceTokenRepository, fcmClient)
	reminderScheduler.Start()
	defer reminderScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, deviceTokenRepository, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
