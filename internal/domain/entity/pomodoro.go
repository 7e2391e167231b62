package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionType is the kind of pomodoro interval
type SessionType string

const (
	SessionTypeWork       SessionType = "work"
	SessionTypeShortBreak SessionType = "short_break"
	SessionTypeLongBreak  SessionType = "long_break"
)

// PomodoroSession is a single focus or break interval
type PomodoroSession struct {
	ID     uuid.UUID  `json:"id"`
	UserID uuid.UUID  `json:"userId"`
	TaskID *uuid.UUID `json:"taskId,omitempty"`

	Type            SessionType `json:"type"`
	StartedAt       time.Time   `json:"startedAt"`
	EndedAt         *time.Time  `json:"endedAt,omitempty"`
	DurationMinutes int         `json:"durationMinutes"`
	Completed       bool        `json:"completed"`

	CreatedAt time.Time `json:"createdAt"`
}

// CompletedAt returns the instant a session is attributed to for day bucketing
func (s *PomodoroSession) CompletedAt() time.Time {
	if s.EndedAt != nil {
		return *s.EndedAt
	}
	return s.StartedAt
}

// PomodoroStatistics summarizes completed sessions
type PomodoroStatistics struct {
	TotalSessions   int                  `json:"totalSessions"`
	TotalDuration   int                  `json:"totalDuration"`
	AverageDuration float64              `json:"averageDuration"`
	DailyStats      []DailyPomodoroStats `json:"dailyStats"`
}

// DailyPomodoroStats is the per-day slice of PomodoroStatistics
type DailyPomodoroStats struct {
	Date     string `json:"date"` // YYYY-MM-DD in the requested timezone
	Sessions int    `json:"sessions"`
	Duration int    `json:"duration"`
}

// PomodoroSessionFilter narrows the sessions fed into statistics
type PomodoroSessionFilter struct {
	TaskID *uuid.UUID
	// From and To bound CompletedAt, From inclusive and To exclusive
	From *time.Time
	To   *time.Time
}
