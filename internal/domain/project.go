package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

func ParseProjectStatus(raw string) (ProjectStatus, error) {
	status := ProjectStatus(normalizeEnum(raw))
	switch status {
	case ProjectPlanning, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unsupported project status %q", raw)
	}
}

type Project struct {
	ProjectID   int64         `json:"projectId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	ClientID    int64         `json:"clientId,omitempty"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	StartDate   *time.Time    `json:"startDate,omitempty"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
}

func (p Project) EntityID() int64 { return p.ProjectID }

func (p Project) Validate() error {
	if err := requirePositiveID("project", "projectId", p.ProjectID); err != nil {
		return err
	}
	if p.Progress < 0 || p.Progress > 100 {
		return invalid("project", "progress %d out of range", p.Progress)
	}

	return nil
}

type NewProject struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ClientID    int64      `json:"clientId"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

func (p NewProject) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if p.ClientID <= 0 {
		return fmt.Errorf("project client id is required")
	}

	return nil
}

func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", progress)
	}

	return nil
}

func normalizeEnum(raw string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), "-", "_")
}
