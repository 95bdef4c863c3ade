package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type DeliverableAPI struct {
	requester Requester
}

var _ ports.DeliverableAPI = (*DeliverableAPI)(nil)

func NewDeliverableAPI(requester Requester) *DeliverableAPI {
	return &DeliverableAPI{requester: requester}
}

func (a *DeliverableAPI) List(ctx context.Context) ([]domain.Deliverable, error) {
	return a.list(ctx, "/deliverables")
}

func (a *DeliverableAPI) ListByProject(ctx context.Context, projectID int64) ([]domain.Deliverable, error) {
	if err := requireID("project", projectID); err != nil {
		return nil, err
	}
	return a.list(ctx, pathf("/deliverables/project/%s", projectID))
}

func (a *DeliverableAPI) Upload(ctx context.Context, upload domain.DeliverableUpload, file io.Reader) (domain.Deliverable, error) {
	if err := upload.Validate(); err != nil {
		return domain.Deliverable{}, err
	}
	if file == nil {
		return domain.Deliverable{}, fmt.Errorf("deliverable file content is required")
	}

	fields := map[string]string{
		"projectId": strconv.FormatInt(upload.ProjectID, 10),
		"title":     upload.Title,
	}
	if upload.UploadedBy > 0 {
		fields["uploadedBy"] = strconv.FormatInt(upload.UploadedBy, 10)
	}

	var created domain.Deliverable
	part := gateway.FilePart{Field: "file", FileName: upload.FileName, Content: file}
	if err := a.requester.Upload(ctx, "/deliverables/upload", fields, part, &created); err != nil {
		return domain.Deliverable{}, err
	}
	return created, nil
}

func (a *DeliverableAPI) Approve(ctx context.Context, id int64) (domain.Deliverable, error) {
	if err := requireID("deliverable", id); err != nil {
		return domain.Deliverable{}, err
	}

	var approved domain.Deliverable
	if err := a.requester.Do(ctx, http.MethodPut, pathf("/deliverables/%s/approve", id), nil, &approved); err != nil {
		return domain.Deliverable{}, err
	}
	return approved, nil
}

func (a *DeliverableAPI) Delete(ctx context.Context, id int64) error {
	if err := requireID("deliverable", id); err != nil {
		return err
	}
	return a.requester.Do(ctx, http.MethodDelete, pathf("/deliverables/%s", id), nil, nil)
}

func (a *DeliverableAPI) list(ctx context.Context, path string) ([]domain.Deliverable, error) {
	var deliverables gateway.List[domain.Deliverable]
	if err := a.requester.Do(ctx, http.MethodGet, path, nil, &deliverables); err != nil {
		return nil, err
	}
	return deliverables, nil
}
