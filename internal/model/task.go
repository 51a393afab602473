package model

import "time"

// Task represents a to-do item in the database. Each task belongs to exactly
// one user; the owner id is implied by the caller's token and not serialized.
type Task struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"-"`
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Text string `json:"text"`
}

// UpdateTaskRequest represents a task update request.
type UpdateTaskRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
