package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalStatus represents the lifecycle state of a goal
type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "not_started"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusAbandoned  GoalStatus = "abandoned"
)

// Goal represents a user's long-term objective
type Goal struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`

	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Status      GoalStatus `json:"status"`
	Progress    int        `json:"progress"` // percent, 0..100
	TargetDate  *time.Time `json:"targetDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GoalQuery holds sanitized list parameters; nil filters do not restrict
type GoalQuery struct {
	Status     *GoalStatus
	Category   *string
	Search     *string
	TargetFrom *time.Time
	TargetTo   *time.Time

	SortBy    string
	SortOrder SortOrder
	Page      Page
}
