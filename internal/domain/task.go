package domain

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskCompleted  TaskStatus = "COMPLETED"
)

func ParseTaskStatus(raw string) (TaskStatus, error) {
	status := TaskStatus(normalizeEnum(raw))
	switch status {
	case TaskTodo, TaskInProgress, TaskReview, TaskCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("unsupported task status %q", raw)
	}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

func ParseTaskPriority(raw string) (TaskPriority, error) {
	priority := TaskPriority(normalizeEnum(raw))
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return priority, nil
	default:
		return "", fmt.Errorf("unsupported task priority %q", raw)
	}
}

type Task struct {
	TaskID      int64        `json:"taskId"`
	ProjectID   int64        `json:"projectId"`
	AssigneeID  int64        `json:"assigneeId,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority,omitempty"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
}

func (t Task) EntityID() int64 { return t.TaskID }

func (t Task) Validate() error {
	return requirePositiveID("task", "taskId", t.TaskID)
}

type NewTask struct {
	ProjectID   int64        `json:"projectId"`
	AssigneeID  int64        `json:"assigneeId,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
}

func (t NewTask) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if t.ProjectID <= 0 {
		return fmt.Errorf("task project id is required")
	}

	return nil
}

type TaskPatch struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.DueDate == nil
}
