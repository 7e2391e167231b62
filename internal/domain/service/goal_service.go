package service

import (
	"context"
	"time"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGoalInput carries a validated create request
type CreateGoalInput struct {
	Title       string
	Description *string
	Category    *string
	Status      entity.GoalStatus
	Progress    int
	TargetDate  *time.Time
}

// GoalService defines the interface for goal business logic
type GoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, input CreateGoalInput) (*entity.Goal, error)

	// GetGoals returns one page of goals plus the total match count
	GetGoals(ctx context.Context, userID uuid.UUID, query entity.GoalQuery) ([]*entity.Goal, int, error)
}
