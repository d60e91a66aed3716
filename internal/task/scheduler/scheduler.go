package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	authrepo "github.com/SafouaneCh/TaskMate-main/internal/auth/repository"
	"github.com/SafouaneCh/TaskMate-main/internal/task/repository"
	"github.com/SafouaneCh/TaskMate-main/pkg/fcm"
)

// ReminderScheduler sends push reminders for tasks whose reminder time has
// arrived, and periodically clears reminder state from completed tasks.
type ReminderScheduler struct {
	taskRepo   repository.TaskRepository
	deviceRepo authrepo.DeviceTokenRepository
	fcmClient  *fcm.Client
	interval   time.Duration
	cron       *cron.Cron
	stopChan   chan struct{}
}

// NewReminderScheduler creates a new scheduler
func NewReminderScheduler(
	taskRepo repository.TaskRepository,
	deviceRepo authrepo.DeviceTokenRepository,
	fcmClient *fcm.Client,
) *ReminderScheduler {
	return &ReminderScheduler{
		taskRepo:   taskRepo,
		deviceRepo: deviceRepo,
		fcmClient:  fcmClient,
		interval:   1 * time.Minute, // Check every minute
		cron:       cron.New(),
		stopChan:   make(chan struct{}),
	}
}

// Start begins the reminder loop and the nightly cleanup job
func (s *ReminderScheduler) Start() {
	// The cleanup job runs even without FCM: completed tasks must not keep
	// stale reminder state around.
	s.cron.AddFunc("0 3 * * *", s.cleanupCompletedReminders)
	s.cron.Start()

	if s.fcmClient == nil {
		log.Println("[Scheduler] FCM client not available, push reminders disabled")
		return
	}

	log.Println("[Scheduler] Starting task reminder scheduler (interval: 1 minute)")

	go func() {
		// Run immediately on start
		s.checkAndSendReminders()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSendReminders()
			case <-s.stopChan:
				log.Println("[Scheduler] Reminder loop stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *ReminderScheduler) Stop() {
	s.cron.Stop()
	close(s.stopChan)
}

// checkAndSendReminders finds tasks with due reminders and pushes them to
// every device of the owning user
func (s *ReminderScheduler) checkAndSendReminders() {
	now := time.Now()

	tasks, err := s.taskRepo.FindPendingReminders(now)
	if err != nil {
		log.Printf("[Scheduler] Error finding pending reminders: %v", err)
		return
	}

	if len(tasks) == 0 {
		return
	}

	log.Printf("[Scheduler] Found %d tasks with pending reminders", len(tasks))

	for _, task := range tasks {
		tokens, err := s.deviceRepo.GetTokensByUserID(task.UserID)
		if err != nil {
			log.Printf("[Scheduler] Error getting device tokens for user %s: %v", task.UserID, err)
			continue
		}

		if len(tokens) == 0 {
			log.Printf("[Scheduler] No devices for user %s, marking reminder as sent", task.UserID)
			s.taskRepo.MarkReminderSent(task.ID)
			continue
		}

		title := "Reminder: " + task.Name
		body := task.Description
		if body == "" {
			body = "You have a task due"
		}
		if task.DueAt != nil {
			body = fmt.Sprintf("%s\nDue: %s", body, task.DueAt.Format("02/01/2006 15:04"))
		}

		var tokenStrings []string
		for _, t := range tokens {
			tokenStrings = append(tokenStrings, t.Token)
		}

		notification := fcm.NotificationData{
			Title: title,
			Body:  body,
			Data: map[string]string{
				"type":         "task_reminder",
				"task_id":      task.ID,
				"priority":     string(task.Priority),
				"click_action": "/tasks",
			},
		}

		failedTokens, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, notification)
		if err != nil {
			log.Printf("[Scheduler] Error sending reminder for task %s: %v", task.ID, err)
		} else {
			log.Printf("[Scheduler] Sent reminder for task %q to %d devices", task.Name, len(tokenStrings)-len(failedTokens))
		}

		// Cleanup tokens FCM rejected
		for _, token := range failedTokens {
			s.deviceRepo.DeleteToken(token)
		}

		// Mark reminder as sent regardless of success to avoid spamming
		if err := s.taskRepo.MarkReminderSent(task.ID); err != nil {
			log.Printf("[Scheduler] Error marking reminder as sent for task %s: %v", task.ID, err)
		}
	}
}

// cleanupCompletedReminders clears reminder state from completed tasks
func (s *ReminderScheduler) cleanupCompletedReminders() {
	cleared, err := s.taskRepo.ClearCompletedReminders()
	if err != nil {
		log.Printf("[Scheduler] Error clearing completed-task reminders: %v", err)
		return
	}
	if cleared > 0 {
		log.Printf("[Scheduler] Cleared reminder state from %d completed tasks", cleared)
	}
}
