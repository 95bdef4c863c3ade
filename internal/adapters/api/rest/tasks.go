package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type TaskAPI struct {
	requester Requester
}

var _ ports.TaskAPI = (*TaskAPI)(nil)

func NewTaskAPI(requester Requester) *TaskAPI {
	return &TaskAPI{requester: requester}
}

func (a *TaskAPI) List(ctx context.Context) ([]domain.Task, error) {
	return a.list(ctx, "/tasks")
}

func (a *TaskAPI) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	if err := requireID("project", projectID); err != nil {
		return nil, err
	}
	return a.list(ctx, pathf("/tasks/project/%s", projectID))
}

func (a *TaskAPI) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	if err := requireID("user", userID); err != nil {
		return nil, err
	}
	return a.list(ctx, pathf("/tasks/user/%s", userID))
}

func (a *TaskAPI) Create(ctx context.Context, task domain.NewTask) (domain.Task, error) {
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}
	return a.write(ctx, http.MethodPost, "/tasks/create", task)
}

func (a *TaskAPI) Update(ctx context.Context, id int64, patch domain.TaskPatch) (domain.Task, error) {
	if err := requireID("task", id); err != nil {
		return domain.Task{}, err
	}
	if patch.Empty() {
		return domain.Task{}, fmt.Errorf("task update has no fields")
	}
	return a.write(ctx, http.MethodPut, pathf("/tasks/%s/update", id), patch)
}

func (a *TaskAPI) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, error) {
	if err := requireID("task", id); err != nil {
		return domain.Task{}, err
	}
	if _, err := domain.ParseTaskStatus(string(status)); err != nil {
		return domain.Task{}, err
	}
	return a.write(ctx, http.MethodPut, pathf("/tasks/%s/status", id), map[string]domain.TaskStatus{"status": status})
}

func (a *TaskAPI) Assign(ctx context.Context, id int64, userID int64) (domain.Task, error) {
	if err := requireID("task", id); err != nil {
		return domain.Task{}, err
	}
	if err := requireID("user", userID); err != nil {
		return domain.Task{}, err
	}
	return a.write(ctx, http.MethodPut, pathf("/tasks/%s/assign", id), map[string]int64{"userId": userID})
}

func (a *TaskAPI) Delete(ctx context.Context, id int64) error {
	if err := requireID("task", id); err != nil {
		return err
	}
	return a.requester.Do(ctx, http.MethodDelete, pathf("/tasks/%s", id), nil, nil)
}

func (a *TaskAPI) list(ctx context.Context, path string) ([]domain.Task, error) {
	var tasks gateway.List[domain.Task]
	if err := a.requester.Do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (a *TaskAPI) write(ctx context.Context, method, path string, body any) (domain.Task, error) {
	var task domain.Task
	if err := a.requester.Do(ctx, method, path, body, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}
