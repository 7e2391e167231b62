package service

import (
	"context"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateHabitInput carries a validated create request
type CreateHabitInput struct {
	Name        string
	Description *string
	Color       *string
	Frequency   entity.Frequency
	TargetCount int
	IsActive    *bool
}

// HabitService defines the interface for habit business logic
type HabitService interface {
	CreateHabit(ctx context.Context, userID uuid.UUID, input CreateHabitInput) (*entity.Habit, error)

	// GetHabits returns one page of habits plus the total match count
	GetHabits(ctx context.Context, userID uuid.UUID, query entity.HabitQuery) ([]*entity.Habit, int, error)
}
