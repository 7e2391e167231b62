package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is the owned parent of reminders and pomodoro sessions
type Task struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
