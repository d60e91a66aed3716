package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/SafouaneCh/TaskMate-main/internal/task/domain"
	"github.com/SafouaneCh/TaskMate-main/internal/task/repository"
	"github.com/SafouaneCh/TaskMate-main/pkg/ai"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	parser   NaturalLanguageParser
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) SetParser(parser NaturalLanguageParser) {
	u.parser = parser
}

func (u *taskUsecase) CreateTask(userID string, req CreateTaskRequest) (*domain.Task, error) {
	task := &domain.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Contact:     req.Contact,
		Type:        parseTaskType(req.Type),
		Priority:    parsePriority(req.Priority),
		Status:      domain.TaskStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if req.DueAt != nil && *req.DueAt != "" {
		if t, err := time.Parse(time.RFC3339, *req.DueAt); err == nil {
			task.DueAt = &t
		}
	}

	if req.ReminderAt != nil && *req.ReminderAt != "" {
		if t, err := time.Parse(time.RFC3339, *req.ReminderAt); err == nil {
			task.ReminderAt = &t
		}
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}
	if task.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, status *string, limit, offset int) ([]*domain.Task, int64, error) {
	var statusFilter *domain.TaskStatus
	if status != nil && *status != "" {
		s := domain.TaskStatus(*status)
		if !domain.IsValidStatus(s) {
			return nil, 0, errors.New("invalid status")
		}
		statusFilter = &s
	}
	return u.taskRepo.FindByUserID(userID, statusFilter, limit, offset)
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		task.Name = *updates.Name
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Contact != nil {
		task.Contact = *updates.Contact
	}
	if updates.Type != nil {
		task.Type = parseTaskType(*updates.Type)
	}
	if updates.Priority != nil {
		task.Priority = parsePriority(*updates.Priority)
	}
	if updates.Status != nil {
		if err := applyStatus(task, domain.TaskStatus(*updates.Status)); err != nil {
			return nil, err
		}
	}
	if updates.DueAt != nil {
		if *updates.DueAt == "" {
			task.DueAt = nil
		} else if t, err := time.Parse(time.RFC3339, *updates.DueAt); err == nil {
			task.DueAt = &t
		}
	}
	if updates.ReminderAt != nil {
		if *updates.ReminderAt == "" {
			task.ReminderAt = nil
			task.ReminderSent = false
		} else if t, err := time.Parse(time.RFC3339, *updates.ReminderAt); err == nil {
			task.ReminderAt = &t
			task.ReminderSent = false // Reset reminder status when time changes
		}
	}

	task.UpdatedAt = time.Now()
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) UpdateTaskStatus(userID, taskID string, status string) (*domain.Task, error) {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := applyStatus(task, domain.TaskStatus(status)); err != nil {
		return nil, err
	}

	task.UpdatedAt = time.Now()
	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.GetTaskByID(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

func (u *taskUsecase) GetTaskStats(userID string) (*TaskStats, error) {
	counts, err := u.taskRepo.CountByStatus(userID)
	if err != nil {
		return nil, err
	}

	stats := &TaskStats{ByStatus: counts}
	for _, count := range counts {
		stats.Total += count
	}
	stats.Completed = counts[domain.TaskStatusCompleted]
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}

	return stats, nil
}

func (u *taskUsecase) GetOverdueTasks(userID string) ([]*domain.Task, error) {
	return u.taskRepo.FindOverdue(userID, time.Now())
}

func (u *taskUsecase) SweepOverdueTasks(userID string) (int64, error) {
	return u.taskRepo.MarkOverdue(userID, time.Now())
}

// ParseTask runs the natural-language parser and persists its descriptor as a
// task owned by userID. A descriptor without a due instant defaults to
// tomorrow at 09:00.
func (u *taskUsecase) ParseTask(ctx context.Context, userID, text string) (*domain.Task, error) {
	if u.parser == nil {
		return nil, errors.New("parser not configured")
	}

	now := time.Now()
	parsed, err := u.parser.ParseNaturalLanguage(ctx, text, now)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        parsed.Task,
		Description: parsed.Description,
		Contact:     parsed.Person,
		Type:        domain.TaskType(parsed.Type),
		Priority:    descriptorPriority(parsed.Priority),
		Status:      domain.TaskStatus(parsed.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	dueAt := descriptorDueAt(parsed.Datetime, now)
	task.DueAt = &dueAt

	// Default reminder one hour before the due instant, when still ahead
	reminderAt := dueAt.Add(-1 * time.Hour)
	if reminderAt.After(now) {
		task.ReminderAt = &reminderAt
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	log.Printf("[TaskUsecase] Parsed %q into task %s (%s)", text, task.ID, task.Name)
	return task, nil
}

// applyStatus validates the transition target and maintains CompletedAt:
// set on completion, cleared when the task moves back to a non-active state.
func applyStatus(task *domain.Task, status domain.TaskStatus) error {
	if !domain.IsValidStatus(status) {
		return errors.New("invalid status")
	}

	task.Status = status
	switch status {
	case domain.TaskStatusCompleted:
		now := time.Now()
		task.CompletedAt = &now
	case domain.TaskStatusInProgress:
		// Keep CompletedAt: a completed task resumed keeps its history
	default:
		task.CompletedAt = nil
	}
	return nil
}

// descriptorDueAt parses the descriptor's ISO 8601 instant, falling back to
// tomorrow 09:00 local when it is absent or unparsable.
func descriptorDueAt(datetime string, now time.Time) time.Time {
	if datetime != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, datetime); err == nil {
				return t
			}
		}
	}
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 9, 0, 0, 0, now.Location())
}

func descriptorPriority(p ai.TaskPriority) domain.Priority {
	switch p {
	case ai.PriorityHigh:
		return domain.PriorityHigh
	case ai.PriorityLow:
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

func parseTaskType(t string) domain.TaskType {
	switch domain.TaskType(t) {
	case domain.TaskTypeEvent, domain.TaskTypeFollowUp, domain.TaskTypeCommunication:
		return domain.TaskType(t)
	default:
		return domain.TaskTypeReminder
	}
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "high":
		return domain.PriorityHigh
	case "low":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}
