package repository

import (
	"context"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// GoalRepository defines the interface for goal persistence
type GoalRepository interface {
	// Create creates a new goal
	Create(ctx context.Context, goal *entity.Goal) error

	// List returns one page of the user's goals and the total number of matches
	List(ctx context.Context, userID uuid.UUID, query entity.GoalQuery) ([]*entity.Goal, int, error)
}
