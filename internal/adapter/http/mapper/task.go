package mapper

import (
	"time"

	"github.com/Shrinila/productify-backend/internal/adapter/http/dto"
	"github.com/Shrinila/productify-backend/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		OwnerID:     task.OwnerID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserItem(profile domain.AccountProfile) dto.UserItem {
	return dto.UserItem{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
	}
}
