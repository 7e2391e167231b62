package postgres

import (
	"context"
	"fmt"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/repository"

	"github.com/google/uuid"
)

const habitColumns = `id, user_id, name, description, color, frequency, target_count, is_active, created_at, updated_at`

var habitSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
}

type habitRepository struct {
	db TxDB
}

// NewHabitRepository creates a new PostgreSQL habit repository
func NewHabitRepository(db TxDB) repository.HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `
		INSERT INTO habits (` + habitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		habit.ID, habit.UserID, habit.Name, habit.Description, habit.Color,
		habit.Frequency, habit.TargetCount, habit.IsActive, habit.CreatedAt, habit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	return nil
}

func (r *habitRepository) List(ctx context.Context, userID uuid.UUID, q entity.HabitQuery) ([]*entity.Habit, int, error) {
	var (
		habits []*entity.Habit
		total  int
	)
	err := inSnapshot(ctx, r.db, func(db DBTX) error {
		var err error
		habits, total, err = r.list(ctx, db, userID, q)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return habits, total, nil
}

// list runs the count and the page query on db.
func (r *habitRepository) list(ctx context.Context, db DBTX, userID uuid.UUID, q entity.HabitQuery) ([]*entity.Habit, int, error) {
	where := &whereBuilder{}
	where.add("user_id = $%d", userID)
	if q.Frequency != nil {
		where.add("frequency = $%d", *q.Frequency)
	}
	if q.IsActive != nil {
		where.add("is_active = $%d", *q.IsActive)
	}
	if q.Search != nil {
		where.add("name ILIKE $%d", containsPattern(*q.Search))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM habits` + where.String()
	if err := db.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count habits: %w", err)
	}

	page := q.Page.Normalize()
	if total == 0 || page.Offset() >= total {
		return []*entity.Habit{}, total, nil
	}

	column, ok := habitSortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	dir := orderDirection(q.SortOrder != entity.SortAsc)

	n := where.next()
	query := fmt.Sprintf(`SELECT %s FROM habits%s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d`,
		habitColumns, where.String(), column, dir, dir, n, n+1)
	args := append(where.args, page.Limit, page.Offset())

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habits := make([]*entity.Habit, 0, page.Limit)
	for rows.Next() {
		habit := &entity.Habit{}
		err := rows.Scan(
			&habit.ID, &habit.UserID, &habit.Name, &habit.Description, &habit.Color,
			&habit.Frequency, &habit.TargetCount, &habit.IsActive, &habit.CreatedAt, &habit.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, total, nil
}
