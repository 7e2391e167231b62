package service

import (
	"context"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, title string) (*entity.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
}
