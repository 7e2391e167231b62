package repository

import (
	"context"
	"time"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// PomodoroRepository defines the interface for pomodoro session persistence
type PomodoroRepository interface {
	// Create creates a new session
	Create(ctx context.Context, session *entity.PomodoroSession) error

	// Complete marks an owned, not yet completed session as completed.
	// Returns ErrNotFound when no such session exists for the user.
	Complete(ctx context.Context, sessionID, userID uuid.UUID, endedAt time.Time, durationMinutes *int) (*entity.PomodoroSession, error)

	// GetByIDAndUserID retrieves a session by ID and owner
	GetByIDAndUserID(ctx context.Context, sessionID, userID uuid.UUID) (*entity.PomodoroSession, error)

	// GetCompleted retrieves the user's completed sessions matching the filter
	GetCompleted(ctx context.Context, userID uuid.UUID, filter entity.PomodoroSessionFilter) ([]*entity.PomodoroSession, error)
}
