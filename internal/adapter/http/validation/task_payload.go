package validation

import (
	"errors"
	"strings"

	"github.com/Shrinila/productify-backend/internal/adapter/http/dto"
	"github.com/Shrinila/productify-backend/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput coerces the boundary payload into the immutable
// create input. An authenticated caller overrides any client-supplied
// owner; an anonymous request must name one.
func BuildCreateTaskInput(req dto.CreateTaskRequest, callerID string) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	ownerID := callerID
	if ownerID == "" {
		ownerID = strings.TrimSpace(req.OwnerID)
	}
	if ownerID == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		OwnerID:     ownerID,
		Title:       title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}

	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	return input, nil
}

// BuildUpdateTaskInput maps the present fields of a partial update; nil
// fields stay untouched downstream. An empty body is a valid no-op update.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	input := domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}

	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	return input, nil
}
