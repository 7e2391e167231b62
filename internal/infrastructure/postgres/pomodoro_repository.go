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

const sessionColumns = `id, user_id, task_id, session_type, started_at, ended_at, duration_minutes, completed, created_at`

type pomodoroRepository struct {
	db DBTX
}

// NewPomodoroRepository creates a new PostgreSQL pomodoro session repository
func NewPomodoroRepository(db DBTX) repository.PomodoroRepository {
	return &pomodoroRepository{db: db}
}

func scanSession(row pgx.Row) (*entity.PomodoroSession, error) {
	s := &entity.PomodoroSession{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.TaskID, &s.Type,
		&s.StartedAt, &s.EndedAt, &s.DurationMinutes, &s.Completed,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pomodoroRepository) Create(ctx context.Context, s *entity.PomodoroSession) error {
	query := `
		INSERT INTO pomodoro_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.UserID, s.TaskID, s.Type,
		s.StartedAt, s.EndedAt, s.DurationMinutes, s.Completed,
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pomodoro session: %w", err)
	}

	return nil
}

func (r *pomodoroRepository) Complete(ctx context.Context, sessionID, userID uuid.UUID, endedAt time.Time, durationMinutes *int) (*entity.PomodoroSession, error) {
	query := `
		UPDATE pomodoro_sessions SET
			completed = TRUE,
			ended_at = $3,
			duration_minutes = COALESCE($4, duration_minutes)
		WHERE id = $1 AND user_id = $2 AND completed = FALSE
		RETURNING ` + sessionColumns

	session, err := scanSession(r.db.QueryRow(ctx, query, sessionID, userID, endedAt, durationMinutes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete pomodoro session: %w", err)
	}

	return session, nil
}

func (r *pomodoroRepository) GetByIDAndUserID(ctx context.Context, sessionID, userID uuid.UUID) (*entity.PomodoroSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM pomodoro_sessions
		WHERE id = $1 AND user_id = $2
	`

	session, err := scanSession(r.db.QueryRow(ctx, query, sessionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pomodoro session: %w", err)
	}

	return session, nil
}

func (r *pomodoroRepository) GetCompleted(ctx context.Context, userID uuid.UUID, filter entity.PomodoroSessionFilter) ([]*entity.PomodoroSession, error) {
	where := &whereBuilder{}
	where.add("user_id = $%d", userID)
	where.addRaw("completed = TRUE")
	if filter.TaskID != nil {
		where.add("task_id = $%d", *filter.TaskID)
	}
	if filter.From != nil {
		where.add("COALESCE(ended_at, started_at) >= $%d", *filter.From)
	}
	if filter.To != nil {
		where.add("COALESCE(ended_at, started_at) < $%d", *filter.To)
	}

	query := `SELECT ` + sessionColumns + ` FROM pomodoro_sessions` + where.String() +
		` ORDER BY COALESCE(ended_at, started_at) ASC`

	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get pomodoro sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]*entity.PomodoroSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pomodoro session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pomodoro sessions: %w", err)
	}

	return sessions, nil
}
