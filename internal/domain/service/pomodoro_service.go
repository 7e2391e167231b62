package service

import (
	"context"
	"time"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// StatisticsQuery scopes a statistics request. Dates are local calendar days in Timezone.
type StatisticsQuery struct {
	TaskID   *uuid.UUID
	Timezone string
	From     *time.Time
	To       *time.Time
}

// StartSessionInput carries a validated session start request
type StartSessionInput struct {
	TaskID          *uuid.UUID
	Type            entity.SessionType
	DurationMinutes int
	StartedAt       *time.Time
}

// PomodoroService defines the interface for pomodoro sessions and statistics
type PomodoroService interface {
	StartSession(ctx context.Context, userID uuid.UUID, input StartSessionInput) (*entity.PomodoroSession, error)

	// CompleteSession completes a running session; durationMinutes overrides the planned length
	CompleteSession(ctx context.Context, sessionID, userID uuid.UUID, durationMinutes *int) (*entity.PomodoroSession, error)

	// GetPomodoroStatistics aggregates completed sessions; zero sessions yield zeroed statistics
	GetPomodoroStatistics(ctx context.Context, userID uuid.UUID, query StatisticsQuery) (*entity.PomodoroStatistics, error)
}
