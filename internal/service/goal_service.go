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

type goalService struct {
	goalRepo repository.GoalRepository
	now      func() time.Time
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo repository.GoalRepository) service.GoalService {
	return &goalService{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, input service.CreateGoalInput) (*entity.Goal, error) {
	status := input.Status
	if status == "" {
		status = entity.GoalStatusNotStarted
	}

	now := s.now().UTC()
	goal := &entity.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Status:      status,
		Progress:    input.Progress,
		TargetDate:  input.TargetDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *goalService) GetGoals(ctx context.Context, userID uuid.UUID, query entity.GoalQuery) ([]*entity.Goal, int, error) {
	if query.SortBy == "" {
		query.SortBy = "createdAt"
	}
	if query.SortOrder == "" {
		query.SortOrder = entity.SortDesc
	}
	query.Page = query.Page.Normalize()

	goals, total, err := s.goalRepo.List(ctx, userID, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		goals = []*entity.Goal{}
	}

	return goals, total, nil
}
