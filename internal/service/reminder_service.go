package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/repository"
	"productivity-service/internal/domain/service"

	"github.com/google/uuid"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	taskRepo     repository.TaskRepository
	notifier     service.ReminderNotifier
	now          func() time.Time
}

// NewReminderService creates a new reminder service. notifier may be nil when
// reminder dispatching is disabled.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	taskRepo repository.TaskRepository,
	notifier service.ReminderNotifier,
) service.ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		taskRepo:     taskRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

func (s *reminderService) CreateReminder(ctx context.Context, userID uuid.UUID, input service.CreateReminderInput) (*entity.Reminder, error) {
	now := s.now()
	if input.TriggerTime.Before(now) {
		return nil, service.ErrReminderInPast
	}

	exists, err := s.taskRepo.ExistsForUser(ctx, input.TaskID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return nil, service.ErrTaskNotFound
	}

	reminder := &entity.Reminder{
		ID:          uuid.New(),
		TaskID:      input.TaskID,
		UserID:      userID,
		TriggerTime: storedTime(input.TriggerTime),
		Message:     input.Message,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder, nil
}

func (s *reminderService) GetReminderByID(ctx context.Context, reminderID, userID uuid.UUID) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.GetByIDAndUserID(ctx, reminderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return reminder, nil
}

func (s *reminderService) GetRemindersByTaskID(ctx context.Context, taskID, userID uuid.UUID) ([]*entity.Reminder, error) {
	reminders, err := s.reminderRepo.GetByTaskID(ctx, taskID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	if reminders == nil {
		reminders = []*entity.Reminder{}
	}
	return reminders, nil
}

func (s *reminderService) UpdateReminder(ctx context.Context, reminderID, userID uuid.UUID, patch entity.ReminderPatch) (*entity.Reminder, error) {
	now := s.now()

	// Rejected before the store is touched so the record stays unchanged
	if patch.TriggerTime != nil {
		if patch.TriggerTime.Before(now) {
			return nil, service.ErrReminderInPast
		}
		utc := storedTime(*patch.TriggerTime)
		patch.TriggerTime = &utc
	}

	if patch.IsEmpty() {
		return s.GetReminderByID(ctx, reminderID, userID)
	}

	reminder, err := s.reminderRepo.Update(ctx, reminderID, userID, patch, now.UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return reminder, nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, reminderID, userID uuid.UUID) (bool, error) {
	deleted, err := s.reminderRepo.Delete(ctx, reminderID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete reminder: %w", err)
	}
	return deleted, nil
}

// DispatchDueReminders publishes due reminders one by one. A reminder whose
// publish fails stays unfired and is retried on the next run.
func (s *reminderService) DispatchDueReminders(ctx context.Context, limit int) (int, error) {
	if s.notifier == nil {
		return 0, fmt.Errorf("reminder notifier is not configured")
	}

	now := s.now().UTC()
	due, err := s.reminderRepo.GetDue(ctx, now, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to get due reminders: %w", err)
	}

	var (
		sent int
		errs []error
	)
	for _, reminder := range due {
		if err := s.notifier.NotifyReminderDue(ctx, reminder); err != nil {
			errs = append(errs, fmt.Errorf("reminder %s: %w", reminder.ID, err))
			continue
		}

		sent++

		// ErrNotFound means the reminder was rescheduled or deleted meanwhile
		if err := s.reminderRepo.MarkFired(ctx, reminder.ID, reminder.TriggerTime, now); err != nil && !errors.Is(err, repository.ErrNotFound) {
			errs = append(errs, fmt.Errorf("reminder %s: failed to mark fired: %w", reminder.ID, err))
		}
	}

	return sent, errors.Join(errs...)
}

// storedTime matches what timestamptz keeps, so the value read back compares
// equal to the one MarkFired is given.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
