package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a scheduled notification attached to a task
type Reminder struct {
	ID     uuid.UUID `json:"id"`
	TaskID uuid.UUID `json:"taskId"`
	UserID uuid.UUID `json:"userId"`

	TriggerTime time.Time `json:"triggerTime"`
	Message     *string   `json:"message,omitempty"`

	// FiredAt is set once the dispatcher has published the reminder
	FiredAt *time.Time `json:"firedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsInPast reports whether the trigger time is strictly before now
func (r *Reminder) IsInPast(now time.Time) bool {
	return r.TriggerTime.Before(now)
}

// IsDue reports whether the reminder should be dispatched at now
func (r *Reminder) IsDue(now time.Time) bool {
	return r.FiredAt == nil && !r.TriggerTime.After(now)
}

// ReminderPatch holds the fields of a partial reminder update; nil means unchanged
type ReminderPatch struct {
	TriggerTime *time.Time
	Message     *string
}

// IsEmpty returns true if the patch changes nothing
func (p ReminderPatch) IsEmpty() bool {
	return p.TriggerTime == nil && p.Message == nil
}
