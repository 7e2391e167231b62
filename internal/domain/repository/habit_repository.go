package repository

import (
	"context"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitRepository defines the interface for habit persistence
type HabitRepository interface {
	// Create creates a new habit
	Create(ctx context.Context, habit *entity.Habit) error

	// List returns one page of the user's habits and the total number of matches
	List(ctx context.Context, userID uuid.UUID, query entity.HabitQuery) ([]*entity.Habit, int, error)
}
