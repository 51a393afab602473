package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations. Every read and write
// is filtered by the owning user id; a task id alone never authorizes
// access.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task and sets the generated ID on the task struct.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (user_id, text, completed) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, task.UserID, task.Text, task.Completed)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// ListByOwner retrieves all tasks owned by the given user in insertion order.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	query := `SELECT id, user_id, text, completed, created_at FROM tasks WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update changes the text and completed flag of the task matching both the
// task id and the owner id. Zero rows affected means the task does not exist
// or belongs to someone else; both cases report ErrTaskNotFound.
func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID int64, text string, completed bool) error {
	query := `UPDATE tasks SET text = ?, completed = ? WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, text, completed, taskID, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Delete removes the task matching both the task id and the owner id, with
// the same not-found semantics as Update.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
