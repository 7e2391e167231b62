package postgres

import (
	"context"
	"fmt"

	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/repository"

	"github.com/google/uuid"
)

const goalColumns = `id, user_id, title, description, category, status, progress, target_date, created_at, updated_at`

// goalSortColumns whitelists sortable fields
var goalSortColumns = map[string]string{
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"targetDate": "target_date",
	"title":      "title",
	"progress":   "progress",
}

type goalRepository struct {
	db TxDB
}

// NewGoalRepository creates a new PostgreSQL goal repository
func NewGoalRepository(db TxDB) repository.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description, goal.Category,
		goal.Status, goal.Progress, goal.TargetDate, goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	return nil
}

func (r *goalRepository) List(ctx context.Context, userID uuid.UUID, q entity.GoalQuery) ([]*entity.Goal, int, error) {
	var (
		goals []*entity.Goal
		total int
	)
	err := inSnapshot(ctx, r.db, func(db DBTX) error {
		var err error
		goals, total, err = r.list(ctx, db, userID, q)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	return goals, total, nil
}

// list runs the count and the page query on db.
func (r *goalRepository) list(ctx context.Context, db DBTX, userID uuid.UUID, q entity.GoalQuery) ([]*entity.Goal, int, error) {
	where := &whereBuilder{}
	where.add("user_id = $%d", userID)
	if q.Status != nil {
		where.add("status = $%d", *q.Status)
	}
	if q.Category != nil {
		where.add("category = $%d", *q.Category)
	}
	if q.Search != nil {
		where.add("title ILIKE $%d", containsPattern(*q.Search))
	}
	if q.TargetFrom != nil {
		where.add("target_date >= $%d", *q.TargetFrom)
	}
	if q.TargetTo != nil {
		where.add("target_date <= $%d", *q.TargetTo)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM goals` + where.String()
	if err := db.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count goals: %w", err)
	}

	page := q.Page.Normalize()
	if total == 0 || page.Offset() >= total {
		return []*entity.Goal{}, total, nil
	}

	column, ok := goalSortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	dir := orderDirection(q.SortOrder != entity.SortAsc)

	n := where.next()
	query := fmt.Sprintf(`SELECT %s FROM goals%s ORDER BY %s %s NULLS LAST, id %s LIMIT $%d OFFSET $%d`,
		goalColumns, where.String(), column, dir, dir, n, n+1)
	args := append(where.args, page.Limit, page.Offset())

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]*entity.Goal, 0, page.Limit)
	for rows.Next() {
		goal := &entity.Goal{}
		err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goal.Category,
			&goal.Status, &goal.Progress, &goal.TargetDate, &goal.CreatedAt, &goal.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate goals: %w", err)
	}

	return goals, total, nil
}
