package models

import "time"

// Note is a text note owned by exactly one user. CreatedAt is set once at
// creation; UpdatedAt is refreshed on every mutation.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
