package rest

import (
	"context"
	"net/http"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type ProjectAPI struct {
	requester Requester
}

var _ ports.ProjectAPI = (*ProjectAPI)(nil)

func NewProjectAPI(requester Requester) *ProjectAPI {
	return &ProjectAPI{requester: requester}
}

func (a *ProjectAPI) List(ctx context.Context) ([]domain.Project, error) {
	var projects gateway.List[domain.Project]
	if err := a.requester.Do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (a *ProjectAPI) ListByClient(ctx context.Context, clientID int64) ([]domain.Project, error) {
	if err := requireID("client", clientID); err != nil {
		return nil, err
	}

	var projects gateway.List[domain.Project]
	if err := a.requester.Do(ctx, http.MethodGet, pathf("/projects/client/%s", clientID), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (a *ProjectAPI) Get(ctx context.Context, id int64) (domain.Project, error) {
	if err := requireID("project", id); err != nil {
		return domain.Project{}, err
	}

	var project domain.Project
	if err := a.requester.Do(ctx, http.MethodGet, pathf("/projects/%s", id), nil, &project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (a *ProjectAPI) Create(ctx context.Context, project domain.NewProject) (domain.Project, error) {
	if err := project.Validate(); err != nil {
		return domain.Project{}, err
	}

	var created domain.Project
	if err := a.requester.Do(ctx, http.MethodPost, "/projects/create", project, &created); err != nil {
		return domain.Project{}, err
	}
	return created, nil
}

func (a *ProjectAPI) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) (domain.Project, error) {
	if err := requireID("project", id); err != nil {
		return domain.Project{}, err
	}
	if _, err := domain.ParseProjectStatus(string(status)); err != nil {
		return domain.Project{}, err
	}

	var updated domain.Project
	body := map[string]domain.ProjectStatus{"status": status}
	if err := a.requester.Do(ctx, http.MethodPut, pathf("/projects/%s/status", id), body, &updated); err != nil {
		return domain.Project{}, err
	}
	return updated, nil
}

func (a *ProjectAPI) UpdateProgress(ctx context.Context, id int64, progress int) (domain.Project, error) {
	if err := requireID("project", id); err != nil {
		return domain.Project{}, err
	}
	if err := domain.ValidateProgress(progress); err != nil {
		return domain.Project{}, err
	}

	var updated domain.Project
	body := map[string]int{"progress": progress}
	if err := a.requester.Do(ctx, http.MethodPut, pathf("/projects/%s/progress", id), body, &updated); err != nil {
		return domain.Project{}, err
	}
	return updated, nil
}
