package dto

// TaskItem keeps the wire shape existing clients expect: camelCase keys,
// RFC3339 createdAt, dueDate as an opaque string.
type TaskItem struct {
	ID          uint64 `json:"id"`
	OwnerID     string `json:"ownerId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

type CreateTaskRequest struct {
	OwnerID     string  `json:"ownerId" binding:"omitempty,max=64"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"dueDate" binding:"omitempty,max=64"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo inprogress done"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"dueDate" binding:"omitempty,max=64"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo inprogress done"`
	Completed   *bool   `json:"completed"`
}

type DeleteTaskResponse struct {
	Success bool `json:"success"`
}
