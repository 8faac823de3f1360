package service

import (
	"context"
	"errors"

	"github.com/Shrinila/productify-backend/internal/core/domain"
	"github.com/Shrinila/productify-backend/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		OwnerID:  input.OwnerID,
		Title:    input.Title,
		Priority: domain.TaskPriorityMedium,
		Status:   domain.TaskStatusTodo,
	}

	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	return s.taskRepository.Create(ctx, task)
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, ownerID)
}

// UpdateTask reads the task, merges the partial update and writes it back.
// Concurrent updates race; the later write wins, with no conflict detection.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput, callerID string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if callerID != "" && task.OwnerID != callerID {
		return domain.Task{}, domain.ErrNotTaskOwner
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

// DeleteTask is idempotent: an absent id is success, not an error.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64, callerID string) error {
	if callerID != "" {
		task, err := s.taskRepository.FindByID(ctx, taskID)
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if task.OwnerID != callerID {
			return domain.ErrNotTaskOwner
		}
	}

	return s.taskRepository.Delete(ctx, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
