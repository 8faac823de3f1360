package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Shrinila/productify-backend/internal/core/domain"
	"github.com/Shrinila/productify-backend/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (owner_id, title, description, due_date, priority, status, completed, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

	findTaskByIDQuery = `
SELECT * FROM tasks WHERE id = ? LIMIT 1;
`

	// Deterministic insertion order; id breaks ties inside one second.
	listTasksByOwnerQuery = `
SELECT * FROM tasks WHERE owner_id = ? ORDER BY created_at, id;
`

	updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, due_date = ?, priority = ?, status = ?, completed = ?
WHERE id = ?;
`

	deleteTaskQuery = `
DELETE FROM tasks WHERE id = ?;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     string    `db:"due_date"`
	Priority    string    `db:"priority"`
	Status      string    `db:"status"`
	Completed   bool      `db:"completed"`
	CreatedAt   time.Time `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	task.CreatedAt = time.Now().UTC().Truncate(time.Second)

	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		task.OwnerID,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Priority),
		string(task.Status),
		task.Completed,
		task.CreatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	task.ID = uint64(id)
	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByOwnerQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	_, err := r.db.ExecContext(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Priority),
		string(task.Status),
		task.Completed,
		task.ID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		Description: row.Description,
		DueDate:     row.DueDate,
		Priority:    domain.TaskPriority(row.Priority),
		Status:      domain.TaskStatus(row.Status),
		Completed:   row.Completed,
		CreatedAt:   row.CreatedAt,
	}
}
