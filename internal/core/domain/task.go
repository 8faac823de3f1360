package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is a unit of work owned by exactly one account. OwnerID is a weak
// reference: nothing guarantees it names an existing account. ID, OwnerID
// and CreatedAt are immutable after creation.
//
// Status and Completed are independent signals and may diverge; the API
// never reconciles one from the other.
type Task struct {
	ID          uint64
	OwnerID     string
	Title       string
	Description string
	DueDate     string
	Priority    TaskPriority
	Status      TaskStatus
	Completed   bool
	CreatedAt   time.Time
}

type CreateTaskInput struct {
	OwnerID     string
	Title       string
	Description *string
	DueDate     *string
	Priority    *TaskPriority
	Status      *TaskStatus
}

// UpdateTaskInput carries a partial update: nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *TaskPriority
	Status      *TaskStatus
	Completed   *bool
}
