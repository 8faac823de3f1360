package ports

import (
	"context"

	"github.com/Shrinila/productify-backend/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	FindByID(ctx context.Context, id uint64) (domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id uint64) error
}

type TaskService interface {
	// CreateTask persists a new task with documented defaults applied.
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	// ListTasks returns every task owned by ownerID, ordered by creation.
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	// UpdateTask merges a partial update into an existing task. When
	// callerID is non-empty the task must belong to the caller.
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput, callerID string) (domain.Task, error)
	// DeleteTask removes a task; deleting an absent id is a no-op success.
	DeleteTask(ctx context.Context, taskID uint64, callerID string) error
}
