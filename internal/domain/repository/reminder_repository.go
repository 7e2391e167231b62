package repository

import (
	"context"
	"time"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderRepository defines the interface for reminder persistence
type ReminderRepository interface {
	// Create creates a new reminder
	Create(ctx context.Context, reminder *entity.Reminder) error

	// GetByIDAndUserID retrieves a reminder by ID and owner, ErrNotFound otherwise
	GetByIDAndUserID(ctx context.Context, reminderID, userID uuid.UUID) (*entity.Reminder, error)

	// GetByTaskID retrieves the owner's reminders of a task ordered by trigger time
	GetByTaskID(ctx context.Context, taskID, userID uuid.UUID) ([]*entity.Reminder, error)

	// Update applies a partial update in a single statement and returns the stored row.
	// A changed trigger time resets the fired marker.
	Update(ctx context.Context, reminderID, userID uuid.UUID, patch entity.ReminderPatch, updatedAt time.Time) (*entity.Reminder, error)

	// Delete removes an owned reminder and reports whether a row was removed
	Delete(ctx context.Context, reminderID, userID uuid.UUID) (bool, error)

	// GetDue retrieves unfired reminders with trigger time at or before now, oldest first
	GetDue(ctx context.Context, now time.Time, limit int) ([]*entity.Reminder, error)

	// MarkFired records that a reminder has been dispatched. It only matches while the
	// stored trigger time still equals triggerTime, so a reminder rescheduled during
	// dispatch stays armed; ErrNotFound is returned in that case.
	MarkFired(ctx context.Context, reminderID uuid.UUID, triggerTime, firedAt time.Time) error
}
