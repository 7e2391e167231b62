package service

import "errors"

// Error classes. Concrete domain errors match one of them with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

type notFoundError string

func (e notFoundError) Error() string        { return string(e) }
func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

type constraintError string

func (e constraintError) Error() string        { return string(e) }
func (e constraintError) Is(target error) bool { return target == ErrConstraintViolation }

const (
	ErrTaskNotFound     = notFoundError("task not found")
	ErrReminderNotFound = notFoundError("reminder not found")
	ErrSessionNotFound  = notFoundError("pomodoro session not found")

	ErrReminderInPast          = constraintError("reminder time cannot be in the past")
	ErrSessionAlreadyCompleted = constraintError("pomodoro session is already completed")
	ErrInvalidTimezone         = constraintError("unknown timezone")
	ErrInvalidDateRange        = constraintError("from must not be after to")
)
