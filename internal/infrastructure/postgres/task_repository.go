package postgres

import (
	"context"
	"fmt"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/repository"

	"github.com/google/uuid"
)

type taskRepository struct {
	db DBTX
}

// NewTaskRepository creates a new PostgreSQL task repository
func NewTaskRepository(db DBTX) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, task.ID, task.UserID, task.Title, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *taskRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	query := `
		SELECT id, user_id, title, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		task := &entity.Task{}
		if err := rows.Scan(&task.ID, &task.UserID, &task.Title, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) ExistsForUser(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1 AND user_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, taskID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check task: %w", err)
	}

	return exists, nil
}

func (r *taskRepository) Delete(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, taskID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
