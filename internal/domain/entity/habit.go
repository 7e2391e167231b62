package entity

import (
	"time"

	"github.com/google/uuid"
)

// Frequency represents how often a habit is expected to be performed
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Habit represents a user's recurring behavior
type Habit struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`

	// Basic info
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"` // HEX color, e.g., "#FF5722"

	Frequency   Frequency `json:"frequency"`
	TargetCount int       `json:"targetCount"` // repetitions per period

	// Metadata
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HabitQuery holds sanitized list parameters; nil filters do not restrict
type HabitQuery struct {
	Frequency *Frequency
	IsActive  *bool
	Search    *string

	SortBy    string
	SortOrder SortOrder
	Page      Page
}
