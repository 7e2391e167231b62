package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/repository"
	"productivity-service/internal/domain/service"

	"github.com/google/uuid"
)

type taskService struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository) service.TaskService {
	return &taskService{
		taskRepo: taskRepo,
		now:      time.Now,
	}
}

func (s *taskService) CreateTask(ctx context.Context, userID uuid.UUID, title string) (*entity.Task, error) {
	now := s.now().UTC()
	task := &entity.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := s.taskRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*entity.Task{}
	}
	return tasks, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	deleted, err := s.taskRepo.Delete(ctx, taskID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return deleted, nil
}
