package application

import (
	"context"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type ProjectStore struct {
	store *Store[domain.Project]
	api   ports.ProjectAPI
}

func NewProjectStore(api ports.ProjectAPI) *ProjectStore {
	return &ProjectStore{store: NewStore[domain.Project](), api: api}
}

func (s *ProjectStore) Snapshot() Collection[domain.Project] {
	return s.store.Snapshot()
}

func (s *ProjectStore) FetchAll(ctx context.Context) ([]domain.Project, error) {
	return s.store.Fetch(ctx, s.api.List)
}

func (s *ProjectStore) FetchByClient(ctx context.Context, clientID int64) ([]domain.Project, error) {
	return s.store.Fetch(ctx, func(ctx context.Context) ([]domain.Project, error) {
		return s.api.ListByClient(ctx, clientID)
	})
}

func (s *ProjectStore) FetchOne(ctx context.Context, id int64) (domain.Project, error) {
	return s.store.FetchOne(ctx, func(ctx context.Context) (domain.Project, error) {
		return s.api.Get(ctx, id)
	})
}

func (s *ProjectStore) Create(ctx context.Context, project domain.NewProject) (domain.Project, error) {
	return s.store.Create(ctx, func(ctx context.Context) (domain.Project, error) {
		return s.api.Create(ctx, project)
	})
}

func (s *ProjectStore) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) (domain.Project, error) {
	return s.store.Update(ctx, id, func(ctx context.Context) (domain.Project, error) {
		return s.api.UpdateStatus(ctx, id, status)
	})
}

func (s *ProjectStore) UpdateProgress(ctx context.Context, id int64, progress int) (domain.Project, error) {
	return s.store.Update(ctx, id, func(ctx context.Context) (domain.Project, error) {
		return s.api.UpdateProgress(ctx, id, progress)
	})
}
