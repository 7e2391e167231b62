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

type habitService struct {
	habitRepo repository.HabitRepository
	now       func() time.Time
}

// NewHabitService creates a new habit service
func NewHabitService(habitRepo repository.HabitRepository) service.HabitService {
	return &habitService{
		habitRepo: habitRepo,
		now:       time.Now,
	}
}

func (s *habitService) CreateHabit(ctx context.Context, userID uuid.UUID, input service.CreateHabitInput) (*entity.Habit, error) {
	targetCount := input.TargetCount
	if targetCount == 0 {
		targetCount = 1
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := s.now().UTC()
	habit := &entity.Habit{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Color:       input.Color,
		Frequency:   input.Frequency,
		TargetCount: targetCount,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *habitService) GetHabits(ctx context.Context, userID uuid.UUID, query entity.HabitQuery) ([]*entity.Habit, int, error) {
	if query.SortBy == "" {
		query.SortBy = "createdAt"
	}
	if query.SortOrder == "" {
		query.SortOrder = entity.SortDesc
	}
	query.Page = query.Page.Normalize()

	habits, total, err := s.habitRepo.List(ctx, userID, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list habits: %w", err)
	}
	if habits == nil {
		habits = []*entity.Habit{}
	}

	return habits, total, nil
}
