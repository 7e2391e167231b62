package service

import (
	"context"
	"time"

	"productivity-service/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReminderInput carries a validated create request
type CreateReminderInput struct {
	TaskID      uuid.UUID
	TriggerTime time.Time
	Message     *string
}

// ReminderService defines the interface for reminder business logic
type ReminderService interface {
	// CreateReminder schedules a reminder on an owned task
	CreateReminder(ctx context.Context, userID uuid.UUID, input CreateReminderInput) (*entity.Reminder, error)

	// GetReminderByID returns the reminder only if owned by userID, ErrReminderNotFound otherwise
	GetReminderByID(ctx context.Context, reminderID, userID uuid.UUID) (*entity.Reminder, error)

	// GetRemindersByTaskID returns the owner's reminders of a task ordered by trigger time ascending
	GetRemindersByTaskID(ctx context.Context, taskID, userID uuid.UUID) ([]*entity.Reminder, error)

	// UpdateReminder applies a partial update; a trigger time in the past is rejected
	// with ErrReminderInPast and leaves the stored record untouched
	UpdateReminder(ctx context.Context, reminderID, userID uuid.UUID, patch entity.ReminderPatch) (*entity.Reminder, error)

	// DeleteReminder reports whether an owned reminder was removed
	DeleteReminder(ctx context.Context, reminderID, userID uuid.UUID) (bool, error)

	// DispatchDueReminders publishes up to limit due reminders and returns how many were sent
	DispatchDueReminders(ctx context.Context, limit int) (int, error)
}

// ReminderNotifier delivers a due reminder to downstream consumers
type ReminderNotifier interface {
	NotifyReminderDue(ctx context.Context, reminder *entity.Reminder) error
}
