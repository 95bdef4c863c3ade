package application

import (
	"context"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type TaskStore struct {
	store *Store[domain.Task]
	api   ports.TaskAPI
}

func NewTaskStore(api ports.TaskAPI) *TaskStore {
	return &TaskStore{store: NewStore[domain.Task](), api: api}
}

func (s *TaskStore) Snapshot() Collection[domain.Task] {
	return s.store.Snapshot()
}

func (s *TaskStore) FetchAll(ctx context.Context) ([]domain.Task, error) {
	return s.store.Fetch(ctx, s.api.List)
}

func (s *TaskStore) FetchByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return s.store.Fetch(ctx, func(ctx context.Context) ([]domain.Task, error) {
		return s.api.ListByProject(ctx, projectID)
	})
}

func (s *TaskStore) FetchByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.store.Fetch(ctx, func(ctx context.Context) ([]domain.Task, error) {
		return s.api.ListByUser(ctx, userID)
	})
}

func (s *TaskStore) Create(ctx context.Context, task domain.NewTask) (domain.Task, error) {
	return s.store.Create(ctx, func(ctx context.Context) (domain.Task, error) {
		return s.api.Create(ctx, task)
	})
}

func (s *TaskStore) Update(ctx context.Context, id int64, patch domain.TaskPatch) (domain.Task, error) {
	return s.store.Update(ctx, id, func(ctx context.Context) (domain.Task, error) {
		return s.api.Update(ctx, id, patch)
	})
}

func (s *TaskStore) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, error) {
	return s.store.Update(ctx, id, func(ctx context.Context) (domain.Task, error) {
		return s.api.UpdateStatus(ctx, id, status)
	})
}

func (s *TaskStore) Assign(ctx context.Context, id int64, userID int64) (domain.Task, error) {
	return s.store.Update(ctx, id, func(ctx context.Context) (domain.Task, error) {
		return s.api.Assign(ctx, id, userID)
	})
}

func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	return s.store.Remove(ctx, id, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}
