package repository

import (
	"context"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *entity.Task) error

	// GetByUserID retrieves all tasks for a user, newest first
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// ExistsForUser reports whether the task exists and belongs to the user
	ExistsForUser(ctx context.Context, taskID, userID uuid.UUID) (bool, error)

	// Delete removes an owned task; reminders cascade
	Delete(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
}
