package repository

import "errors"

// ErrNotFound is returned when no row matches, including rows owned by another user
var ErrNotFound = errors.New("record not found or unauthorized")
