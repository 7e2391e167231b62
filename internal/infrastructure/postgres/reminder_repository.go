package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reminderColumns = `id, task_id, user_id, trigger_time, message, fired_at, created_at, updated_at`

type reminderRepository struct {
	db DBTX
}

// NewReminderRepository creates a new PostgreSQL reminder repository
func NewReminderRepository(db DBTX) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

func scanReminder(row pgx.Row) (*entity.Reminder, error) {
	reminder := &entity.Reminder{}
	err := row.Scan(
		&reminder.ID, &reminder.TaskID, &reminder.UserID,
		&reminder.TriggerTime, &reminder.Message, &reminder.FiredAt,
		&reminder.CreatedAt, &reminder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		reminder.ID, reminder.TaskID, reminder.UserID,
		reminder.TriggerTime, reminder.Message, reminder.FiredAt,
		reminder.CreatedAt, reminder.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

func (r *reminderRepository) GetByIDAndUserID(ctx context.Context, reminderID, userID uuid.UUID) (*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE id = $1 AND user_id = $2
	`

	reminder, err := scanReminder(r.db.QueryRow(ctx, query, reminderID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

func (r *reminderRepository) GetByTaskID(ctx context.Context, taskID, userID uuid.UUID) ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE task_id = $1 AND user_id = $2
		ORDER BY trigger_time ASC, id ASC
	`

	return r.query(ctx, query, taskID, userID)
}

func (r *reminderRepository) Update(ctx context.Context, reminderID, userID uuid.UUID, patch entity.ReminderPatch, updatedAt time.Time) (*entity.Reminder, error) {
	// A new trigger time re-arms the reminder
	query := `
		UPDATE reminders SET
			trigger_time = COALESCE($3, trigger_time),
			message = COALESCE($4, message),
			fired_at = CASE WHEN $3::timestamptz IS NULL THEN fired_at ELSE NULL END,
			updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING ` + reminderColumns

	reminder, err := scanReminder(r.db.QueryRow(ctx, query, reminderID, userID, patch.TriggerTime, patch.Message, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return reminder, nil
}

func (r *reminderRepository) Delete(ctx context.Context, reminderID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM reminders WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, reminderID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete reminder: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *reminderRepository) GetDue(ctx context.Context, now time.Time, limit int) ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE fired_at IS NULL AND trigger_time <= $1
		ORDER BY trigger_time ASC
		LIMIT $2
	`

	return r.query(ctx, query, now, limit)
}

func (r *reminderRepository) MarkFired(ctx context.Context, reminderID uuid.UUID, triggerTime, firedAt time.Time) error {
	query := `
		UPDATE reminders SET fired_at = $2
		WHERE id = $1 AND fired_at IS NULL AND trigger_time = $3
	`

	result, err := r.db.Exec(ctx, query, reminderID, firedAt, triggerTime)
	if err != nil {
		return fmt.Errorf("failed to mark reminder fired: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *reminderRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Reminder, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]*entity.Reminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}
